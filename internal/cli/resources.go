package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neuronlabs/emodel/entity"
	"github.com/neuronlabs/emodel/query"
)

func (a *app) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <kind> <id>",
		Short: "Gets a single resource",
		Long: `Gets a single resource of the kind: emodel, ion_channel_model, sub_cellular_model_script,
extraction_config or electrical_cell_recording.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := entity.ParseKind(args[0])
			if err != nil {
				return err
			}
			ap, err := a.accessPoint(cmd.Context())
			if err != nil {
				return err
			}

			result := ap.Fetch(cmd.Context(), kind, entity.ID(args[1]), a.userContext())
			if !result.OK() {
				return fmt.Errorf("%s %s %s: %w", kind, args[1], result.Outcome, result.Err)
			}
			return a.write(cmd, result.Record.Map())
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	var (
		page, pageSize int
		filters        []string
	)
	listCmd := &cobra.Command{
		Use:   "list <kind>",
		Short: "Lists the resources",
		Long: `Lists the resources of given kind. The filters are defined as 'field[__operator]=value',
i.e. --filter name__ilike=L5 --filter etype__in=cADpyr,bAC`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := entity.ParseKind(args[0])
			if err != nil {
				return err
			}

			var pagination *query.Pagination
			if page != 0 || pageSize != 0 {
				pagination = query.Page(page, pageSize)
				if err = pagination.IsValid(); err != nil {
					return err
				}
			}

			var filter *query.Filter
			if len(filters) > 0 {
				filter = query.NewFilter()
				for _, expr := range filters {
					simple, err := query.ParseFilter(expr)
					if err != nil {
						return err
					}
					filter.Simples = append(filter.Simples, simple)
				}
			}

			ap, err := a.accessPoint(cmd.Context())
			if err != nil {
				return err
			}
			result := ap.List(cmd.Context(), kind, pagination, filter, a.userContext())
			if !result.OK() {
				return fmt.Errorf("%s %s: %w", kind.Plural(), result.Outcome, result.Err)
			}

			records := make([]map[string]interface{}, len(result.Records))
			for i, record := range result.Records {
				records[i] = record.Map()
			}
			return a.write(cmd, records)
		},
	}
	listCmd.Flags().IntVar(&page, "page", 0, "page number")
	listCmd.Flags().IntVar(&pageSize, "page-size", 0, "page size")
	listCmd.Flags().StringArrayVarP(&filters, "filter", "f", nil, "filter expression 'field[__operator]=value' (repeatable)")
	return listCmd
}
