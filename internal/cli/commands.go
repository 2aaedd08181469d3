package cli

import (
	"github.com/spf13/cobra"

	"github.com/shaiso/dcclient/internal/connector"
	"github.com/shaiso/dcclient/internal/dates"
)

func newVersionCmd(sessionFn func() *Session) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Get software version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := sessionFn()

			resp, err := s.Client.Version(cmd.Context())
			if err != nil {
				return err
			}
			return s.Output.Response(resp)
		},
	}
}

func newStatusCmd(sessionFn func() *Session) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Get service status information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := sessionFn()

			resp, err := s.Client.State(cmd.Context())
			if err != nil {
				return err
			}
			return s.Output.Response(resp)
		},
	}
}

func newPatsumCmd(sessionFn func() *Session) *cobra.Command {
	var rc string
	var from, to dates.Flag

	cmd := &cobra.Command{
		Use:   "patsum",
		Short: "Get Patient Emergency Information Summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := sessionFn()

			r := dates.NewRange(from.Time(), to.Time(), s.Now())
			resp, err := s.Client.PatientInfo(cmd.Context(), connector.NewPatientInfoRequest(rc, r))
			if err != nil {
				return err
			}
			return s.Output.Response(resp)
		},
	}

	cmd.Flags().StringVar(&rc, "rc", "", "Patient ID - rodne cislo (required)")
	cmd.Flags().Var(&from, "from", "Clinical events younger than this day [default: 1970-01-01]")
	cmd.Flags().Var(&to, "to", "Clinical events older than this day [default: now]")
	cmd.MarkFlagRequired("rc")

	return cmd
}
