package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/de-tools/fleet-report/pkg/services/config"
)

type DevicesCmd struct {
	profilesPath string
}

// NewDevicesCmd lists the devices a profiles file covers.
func NewDevicesCmd() *cobra.Command {
	dc := &DevicesCmd{}
	cmd := &cobra.Command{
		Use:   "devices",
		Short: "List the devices registered in the profiles file",
		RunE:  dc.run,
	}

	cmd.Flags().StringVar(&dc.profilesPath, "profiles", "", "Path to the device profiles file")
	_ = cmd.MarkFlagRequired("profiles")

	return cmd
}

func (dc *DevicesCmd) run(cmd *cobra.Command, _ []string) error {
	registry, err := config.NewRegistry(dc.profilesPath)
	if err != nil {
		return err
	}
	profiles, err := registry.GetProfiles(cmd.Context())
	if err != nil {
		return err
	}
	for _, name := range profiles {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
