package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"realty-agent/domain"
	"realty-agent/repository"
	"realty-agent/service"
)

var (
	propertyFilter domain.PropertyFilter
	propertyType   string
	propertySort   string
)

var propertiesCmd = &cobra.Command{
	Use:   "properties",
	Short: "List catalog listings",
	Example: `  realty properties --type condo --sort price-desc
  realty properties --price-range 500000-750000 --bedrooms 2`,
	RunE: runProperties,
}

func init() {
	f := propertiesCmd.Flags()
	f.StringVar(&propertyType, "type", string(domain.TypeAll), "property type (house, apartment, condo, townhouse)")
	f.StringVar(&propertyFilter.PriceRange, "price-range", "", "price range key, e.g. 0-500000")
	f.StringVar(&propertyFilter.Location, "location", "", "location substring")
	f.IntVar(&propertyFilter.Bedrooms, "bedrooms", 0, "minimum bedrooms")
	f.StringVarP(&propertyFilter.Query, "query", "q", "", "free text search")
	f.StringVar(&propertySort, "sort", domain.DefaultSortBy, "sort key: price, date, size or title with -asc/-desc")
}

func runProperties(cmd *cobra.Command, args []string) error {
	propertyFilter.Type = domain.PropertyType(propertyType)

	catalog := service.NewCatalogService(repository.NewPropertyRepositoryMemory(),
		service.NewSeededRand(seed(cfg.Analytics)), nil, logger.Named("catalog"))
	results := catalog.Sort(catalog.Filter(propertyFilter), propertySort)

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tTYPE\tPRICE\tBEDS\tAREA\tLOCATION")
	for _, p := range results {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\t%s\n",
			p.ID, p.Title, p.Type, service.FormatPrice(p.Price), p.Bedrooms,
			service.FormatArea(p.Area), p.Location)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d listings\n", len(results), len(catalog.All()))
	return nil
}
