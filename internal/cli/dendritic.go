package cli

import (
	"github.com/spf13/cobra"

	"github.com/neuronlabs/emodel/dendritic"
)

func (a *app) dendriticCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "dendritic <ISI_CV|rheobase>",
		Short:     "Reads the dendritic reference dataset",
		Long:      `Reads the dendritic reference dataset. The rheobase values are given in nA.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(dendritic.ISICV), string(dendritic.Rheobase)},
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := dendritic.NewDirLoader(a.cfg.Data.Dir).Read(dendritic.DataType(args[0]))
			if err != nil {
				return err
			}
			return a.write(cmd, data)
		},
	}
}
