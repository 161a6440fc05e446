package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nemuizzz/sha2sum/pkg/sha2"
	"github.com/nemuizzz/sha2sum/pkg/utils"
)

// selftestCmd checks the implementation against the FIPS 180-4 examples
var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Verify digests against known-answer vectors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		failed := 0
		vectors := sha2.Vectors()
		for _, v := range vectors {
			got, err := sha2.Sum(v.Variant, v.Input)
			if err != nil {
				return err
			}

			status := "ok"
			if !utils.DigestEqual(v.Want, got) {
				status = "FAIL"
				failed++
				log.WithField("want", v.Want).WithField("got", got).Error(v.Variant.String() + " " + v.Name)
			}
			fmt.Fprintf(out, "%-4s %s %s\n", status, v.Variant, v.Name)
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d vectors failed", failed, len(vectors))
		}
		fmt.Fprintf(out, "all %d vectors passed\n", len(vectors))
		return nil
	},
}
