package category_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/smartexpense/expense-tracker/internal/category"
	categorySQLite "github.com/smartexpense/expense-tracker/internal/category/sqlite"
)

var _ = Describe("Category Handler Integration", func() {
	var (
		db      *gorm.DB
		repo    category.RepositoryAPI
		service *category.Service
		handler *category.Handler
	)

	BeforeEach(func() {
		var err error
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&category.Category{})
		Expect(err).NotTo(HaveOccurred())

		repo = categorySQLite.NewCategoryRepository(db)
		service = category.NewService(repo, slogger)
		handler = category.NewHandler(service)

		for _, name := range category.DefaultCategories {
			Expect(repo.Create(category.NewCategory(name, ""))).To(Succeed())
		}

		inactive := category.NewCategory("Archived", "no longer offered")
		Expect(repo.Create(inactive)).To(Succeed())
		inactive.Deactivate()
		Expect(db.Save(inactive).Error).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	It("should serve the active catalog on GET /categories", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
		rec := httptest.NewRecorder()

		handler.GetCategories(rec, req)

		Expect(rec.Code).To(Equal(http.StatusOK))

		var body struct {
			Categories []category.CategoryResponse `json:"categories"`
		}
		Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())

		names := make([]string, 0, len(body.Categories))
		for _, c := range body.Categories {
			names = append(names, c.Name)
		}
		Expect(names).To(ConsistOf("Food", "Travel", "Staff", "Other"))
		Expect(names).NotTo(ContainElement("Archived"))
	})
})
