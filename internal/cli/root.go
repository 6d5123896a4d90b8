package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/neuronlabs/emodel/accesspoint"
	"github.com/neuronlabs/emodel/config"
	"github.com/neuronlabs/emodel/entity"
	"github.com/neuronlabs/emodel/errors"
	"github.com/neuronlabs/emodel/log"
	"github.com/neuronlabs/emodel/service/httpservice"
	"github.com/neuronlabs/emodel/service/sqlservice"
)

// app is the state shared by the commands of a single execution.
type app struct {
	configPath string
	logLevel   string
	output     string

	token        string
	projectID    string
	virtualLabID string

	cfg    *config.Config
	ap     *accesspoint.AccessPoint
	closer io.Closer
}

// Execute creates the root command and executes it.
// This is called by main.main().
func Execute() {
	a := &app{}
	if err := a.execute(a.rootCmd()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// execute executes the 'cmd' and closes the session opened by the command,
// also when the command failed.
func (a *app) execute(cmd *cobra.Command) error {
	defer a.close()
	return cmd.Execute()
}

// rootCmd creates the root command with all its sub commands.
func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "emodel-access",
		Short: "Access to the emodel resources and the dendritic reference data.",
		Long: `Reads the emodels, ion channel models, subcellular model scripts, extraction configs
and traces from the EntityCore service and the bundled dendritic reference datasets.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.preRun,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "config file path (default: ./config.yaml or ./configs/config.yaml)")
	flags.StringVar(&a.logLevel, "log-level", "", "logging level: debug, info, warning, error")
	flags.StringVarP(&a.output, "output", "o", outputJSON, "output format: json, yaml")
	flags.StringVar(&a.token, "token", "", "bearer token of the user")
	flags.StringVar(&a.projectID, "project-id", "", "project scope of the user")
	flags.StringVar(&a.virtualLabID, "virtual-lab-id", "", "virtual lab scope of the user")

	rootCmd.AddCommand(a.getCmd(), a.listCmd(), a.dendriticCmd())
	return rootCmd
}

func (a *app) preRun(cmd *cobra.Command, args []string) error {
	if a.output != outputJSON && a.output != outputYAML {
		return errors.NewDetf(errors.ClassInvalidArgument, "unknown output format: '%s'", a.output)
	}

	var err error
	if a.cfg, err = a.readConfig(); err != nil {
		return err
	}

	level := a.logLevel
	if level == "" {
		level = a.cfg.Log.Level
	}
	if err = log.SetLevel(log.ParseLevel(level)); err != nil {
		return err
	}
	log.Debugf("Config loaded, entitycore driver: %s", a.cfg.EntityCore.Driver)
	return nil
}

func (a *app) close() {
	if a.closer == nil {
		return
	}
	if err := a.closer.Close(); err != nil {
		log.Warningf("Closing session failed: %v", err)
	}
	a.closer = nil
}

func (a *app) readConfig() (*config.Config, error) {
	if a.configPath != "" {
		return config.ReadConfigFile(a.configPath)
	}
	cfg, err := config.ReadConfig()
	if err == nil {
		return cfg, nil
	}
	var notFound viper.ConfigFileNotFoundError
	if stderrors.As(err, &notFound) {
		return config.Default()
	}
	return nil, err
}

func (a *app) userContext() entity.UserContext {
	if a.token == "" && a.projectID == "" && a.virtualLabID == "" {
		return nil
	}
	return entity.TokenContext{Token: a.token, VirtualLabID: a.virtualLabID, ProjectID: a.projectID}
}

// accessPoint connects the configured entity service.
func (a *app) accessPoint(ctx context.Context) (*accesspoint.AccessPoint, error) {
	if a.ap != nil {
		return a.ap, nil
	}
	conn := a.cfg.EntityCore.Connection

	switch a.cfg.EntityCore.Driver {
	case config.DriverSQLite:
		db, err := sqlservice.Open(conn)
		if err != nil {
			return nil, err
		}
		if err = sqlservice.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		a.closer = db
		a.ap = accesspoint.New(db, accesspoint.WithProvider(sqlservice.New()))
	default:
		p, err := httpservice.New(conn)
		if err != nil {
			return nil, err
		}
		a.ap = accesspoint.New(nil, accesspoint.WithProvider(p))
	}
	return a.ap, nil
}
