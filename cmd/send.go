package cmd

import (
	"fmt"
	"log"
	"time"

	"yatfs/internal/app"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type SendFlags struct {
	FilePath    string
	DialTimeout time.Duration
}

var sendFlags SendFlags

// sendCmd represents the send command
var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a file to a listening receiver",
	Long: `Send a file to a receiver over TCP. This will:

1. Check that the file exists (prompting for a path if --file is omitted)
2. Connect to --host:--port
3. Send the "<filename>,<filesize>" header
4. Stream the file in --chunk-size chunks

No acknowledgement is awaited and failed connections are not retried.`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return validateSendFlags(&sendFlags)
	},
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSenderApp(); err != nil {
			log.Fatalf("Sender failed: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)

	// Define flags with struct binding
	sendCmd.Flags().StringVarP(&sendFlags.FilePath, "file", "f", "", "Path to file to send (prompted for when omitted)")
	sendCmd.Flags().DurationVar(&sendFlags.DialTimeout, "dial-timeout", 0, "Give up connecting after this long (0 waits for the OS)")

	// Bind flags to viper for environment variable support
	viper.BindPFlag("send.file", sendCmd.Flags().Lookup("file"))
	viper.BindPFlag("network.dial_timeout", sendCmd.Flags().Lookup("dial-timeout"))
}

// validateSendFlags validates the send command flags
func validateSendFlags(flags *SendFlags) error {
	if flags.DialTimeout < 0 {
		return fmt.Errorf("dial timeout must not be negative")
	}
	return nil
}

// runSenderApp creates and runs the sender application
func runSenderApp() error {
	ctx := createContext()

	opts := &app.SenderOptions{
		FilePath: viper.GetString("send.file"),
	}

	return createSenderApp().Run(ctx, opts)
}
