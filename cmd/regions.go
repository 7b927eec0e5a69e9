package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/siga-angola/envrisk-cli/internal/model"
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List the known provinces and municipalities",
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := initApp(0, 0)
		if err != nil {
			return eris.Wrap(err, "regions")
		}

		province, _ := cmd.Flags().GetString("province")
		asJSON, _ := cmd.Flags().GetBool("json")

		var regions []*model.LocationProfile
		if province != "" {
			regions, err = env.catalog.MunicipalitiesOf(province)
			if err != nil {
				return eris.Wrap(err, "regions")
			}
		} else {
			regions = env.catalog.All()
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(regions)
		}

		formatRegions(os.Stdout, regions)
		return nil
	},
}

func formatRegions(w io.Writer, regions []*model.LocationProfile) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tKIND\tPROVINCE\tPOPULATION\tAREA_KM2\tCLIMATE")
	for _, r := range regions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%.1f\t%s\n",
			r.ID, r.Name, r.Kind, r.Province, r.Population, r.AreaKM2, r.ClimateZone)
	}
	_ = tw.Flush()
}

func init() {
	regionsCmd.Flags().String("province", "", "list only the municipalities of this province")
	regionsCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(regionsCmd)
}
