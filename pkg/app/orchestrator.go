package app

import (
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	genericapiserver "k8s.io/apiserver/pkg/server"
	k8shealthz "k8s.io/apiserver/pkg/server/healthz"

	"github.com/vmstack/pve-orchestrator/pkg/app/options"
	"github.com/vmstack/pve-orchestrator/pkg/consts"
	"github.com/vmstack/pve-orchestrator/pkg/crontab"
	"github.com/vmstack/pve-orchestrator/pkg/healthz"
	applog "github.com/vmstack/pve-orchestrator/pkg/log"
	"github.com/vmstack/pve-orchestrator/pkg/metrics"
	"github.com/vmstack/pve-orchestrator/pkg/orchestrator"
	"github.com/vmstack/pve-orchestrator/pkg/orchestrator/enrich"
	"github.com/vmstack/pve-orchestrator/pkg/orchestrator/lifecycle"
	"github.com/vmstack/pve-orchestrator/pkg/orchestrator/provision"
	"github.com/vmstack/pve-orchestrator/pkg/registry"
	"github.com/vmstack/pve-orchestrator/pkg/server"
	"github.com/vmstack/pve-orchestrator/pkg/taskq"
	"github.com/vmstack/pve-orchestrator/pkg/version"
	"github.com/vmstack/pve-orchestrator/pkg/viper"
)

func newOrchestratorCommand(opts *options.Options) *cobra.Command {
	return &cobra.Command{
		Use:          consts.Component,
		Short:        "PVE provisioning orchestrator",
		Long:         "PVE provisioning orchestrator",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			version.PrintVersionOrContinue()
			if err := opts.Validate(); err != nil {
				return err
			}

			applog.RegisterLogger(opts.Log)
			defer applog.Sync()

			cmd.Flags().VisitAll(func(flag *pflag.Flag) {
				applog.Infow("FLAG", flag.Name, flag.Value)
			})

			return run(opts)
		},
	}
}

func run(opts *options.Options) error {
	applog.Infow("run pve orchestrator")
	ctx := genericapiserver.SetupSignalContext()

	reg := registry.New(opts.Registry)
	enricher := enrich.New(opts.Enrich)
	provisioner := provision.New(opts.Provision, reg, taskq.NewExecutor())
	manager := lifecycle.New(opts.Lifecycle, reg, enricher)
	orch := orchestrator.New(reg, provisioner, manager, enricher)

	for _, name := range reg.Names() {
		name := name
		healthz.RegisterChecker(k8shealthz.NamedCheck(name, func(*http.Request) error {
			_, err := reg.Resolve(name)
			return err
		}))
	}

	if err := metrics.RegisterSweeper(opts.Metrics, reg); err != nil {
		return err
	}
	crontab.Start()
	defer crontab.Stop()

	go server.Run(opts.Server, orch)

	<-ctx.Done()
	applog.Infow("shutting down")
	return nil
}

// NewOrchestratorCommand create a pve orchestrator command.
func NewOrchestratorCommand() (*cobra.Command, error) {
	opts := options.NewOptions()
	cmd := newOrchestratorCommand(opts)

	opts.AddFlags(cmd.Flags())
	version.AddFlags(cmd.Flags())
	cmd.Flags().AddFlag(pflag.Lookup(viper.ConfigFlagName))
	if err := viper.LoadConfig(opts); err != nil {
		return nil, err
	}
	return cmd, nil
}
