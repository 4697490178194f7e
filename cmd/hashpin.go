package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

// hashPINCmd prints the bcrypt hash for a setup PIN so it can be placed in
// security.pairing_pin_hash before the first device pairs.
var hashPINCmd = &cobra.Command{
	Use:   "hash-pin [pin]",
	Short: "Generate the bcrypt hash for a pairing PIN",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		hash, err := bcrypt.GenerateFromPassword([]byte(args[0]), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash PIN: %v", err)
		}
		fmt.Println(string(hash))
	},
}
