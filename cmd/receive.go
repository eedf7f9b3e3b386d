package cmd

import (
	"fmt"
	"log"

	"yatfs/internal/app"
	"yatfs/pkg/utils"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type ReceiveFlags struct {
	OutDir         string
	Prefix         string
	Strict         bool
	KeepAlive      bool
	MaxConnections int
}

var receiveFlags ReceiveFlags

// receiveCmd represents the receive command
var receiveCmd = &cobra.Command{
	Use:   "receive",
	Short: "Listen for a sender and save the received file",
	Long: `Receive a file over TCP. This will:

1. Listen on --host:--port
2. Accept one connection (or keep accepting with --keep-alive)
3. Read the "<filename>,<filesize>" header
4. Write the payload to <out-dir>/<prefix><filename>

A sender that disconnects early leaves a truncated file. Use --strict to
report that as a failure instead of a success.`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return validateReceiveFlags(&receiveFlags)
	},
	Run: func(cmd *cobra.Command, args []string) {
		if err := runReceiverApp(); err != nil {
			log.Fatalf("Receiver failed: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(receiveCmd)

	// Define flags with struct binding
	receiveCmd.Flags().StringVarP(&receiveFlags.OutDir, "out-dir", "o", ".", "Directory to save received files in")
	receiveCmd.Flags().StringVar(&receiveFlags.Prefix, "prefix", "received_", "Prefix prepended to received file names")
	receiveCmd.Flags().BoolVar(&receiveFlags.Strict, "strict", false, "Fail when the sender disconnects before the declared size")
	receiveCmd.Flags().BoolVar(&receiveFlags.KeepAlive, "keep-alive", false, "Keep accepting transfers concurrently until interrupted")
	receiveCmd.Flags().IntVar(&receiveFlags.MaxConnections, "max-conns", 0, "Maximum concurrent transfers with --keep-alive (0 is unlimited)")

	// Bind flags to viper for environment variable support
	viper.BindPFlag("transfer.output_dir", receiveCmd.Flags().Lookup("out-dir"))
	viper.BindPFlag("transfer.output_prefix", receiveCmd.Flags().Lookup("prefix"))
	viper.BindPFlag("transfer.strict", receiveCmd.Flags().Lookup("strict"))
	viper.BindPFlag("transfer.keep_alive", receiveCmd.Flags().Lookup("keep-alive"))
	viper.BindPFlag("transfer.max_connections", receiveCmd.Flags().Lookup("max-conns"))
}

// validateReceiveFlags validates the receive command flags
func validateReceiveFlags(flags *ReceiveFlags) error {
	if flags.MaxConnections < 0 {
		return fmt.Errorf("max connections must not be negative")
	}
	if _, err := utils.ResolveDestinationDir(viper.GetString("transfer.output_dir")); err != nil {
		return err
	}
	return nil
}

// runReceiverApp creates and runs the receiver application
func runReceiverApp() error {
	ctx := createContext()
	return createReceiverApp().Run(ctx, &app.ReceiverOptions{})
}
