package entry_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smartexpense/expense-tracker/internal/entry"
)

// Stub catalog accepting a fixed set
type stubCatalog struct {
	valid map[string]bool
}

func (s *stubCatalog) IsValidCategory(name string) bool {
	return s.valid[name]
}

var _ = Describe("Entry Handler", func() {
	var handler *entry.Handler

	BeforeEach(func() {
		catalog := &stubCatalog{valid: map[string]bool{"Food": true, "Travel": true}}
		handler = entry.NewHandler(catalog)
	})

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/entry/validate", strings.NewReader(body))
		rec := httptest.NewRecorder()
		handler.Validate(rec, req)
		return rec
	}

	It("should accept a complete valid entry", func() {
		rec := post(`{"title":"Lunch","amount":"450","category":"Food"}`)

		Expect(rec.Code).To(Equal(http.StatusOK))

		var body struct {
			Valid  bool              `json:"valid"`
			Errors map[string]string `json:"errors"`
		}
		Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
		Expect(body.Valid).To(BeTrue())
		Expect(body.Errors).To(BeEmpty())
	})

	It("should report per-field messages for an empty entry", func() {
		rec := post(`{"title":"","amount":"","category":""}`)

		Expect(rec.Code).To(Equal(http.StatusOK))

		var body struct {
			Valid  bool              `json:"valid"`
			Errors map[string]string `json:"errors"`
		}
		Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
		Expect(body.Valid).To(BeFalse())
		Expect(body.Errors).To(HaveKey("title"))
		Expect(body.Errors).To(HaveKey("amount"))
		Expect(body.Errors).To(HaveKey("category"))
	})

	It("should reject a category outside the catalog", func() {
		rec := post(`{"title":"Lunch","amount":"450","category":"Gadgets"}`)

		Expect(rec.Code).To(Equal(http.StatusOK))

		var body struct {
			Valid  bool              `json:"valid"`
			Errors map[string]string `json:"errors"`
		}
		Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
		Expect(body.Valid).To(BeFalse())
		Expect(body.Errors).To(HaveKeyWithValue("category", "Please select a valid category"))
	})

	It("should reject a malformed body", func() {
		rec := post(`{not json`)

		Expect(rec.Code).To(Equal(http.StatusBadRequest))
	})
})
