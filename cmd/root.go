package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"yatfs/internal/app"
	"yatfs/internal/config"
	"yatfs/internal/processor"
	"yatfs/internal/reporter"
	"yatfs/internal/transport"
	"yatfs/internal/ui"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfg     *config.Config
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "yatfs",
	Short: "YATFS - Yet Another TCP File Sender",
	Long: `YATFS transfers a single file over a plain TCP connection.

The receiver listens, reads a "<filename>,<filesize>" header and writes the
payload to received_<filename>. The sender connects, sends the header and
streams the file in fixed-size chunks. Nothing is sent back to the sender.

Usage:
  Receive a file: yatfs receive
  Send a file:    yatfs send --file /path/to/file`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize viper configuration
		initConfig()

		var err error
		cfg, err = config.Load(viper.GetViper())
		if err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		return nil
	},
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.yatfs.yaml)")
	rootCmd.PersistentFlags().String("host", "0.0.0.0", "address to listen on or connect to")
	rootCmd.PersistentFlags().Int("port", 8089, "TCP port to listen on or connect to")
	rootCmd.PersistentFlags().Int("chunk-size", 1024, "bytes per read/write chunk")
	rootCmd.PersistentFlags().String("progress", config.ProgressLines, "progress display: lines, bar or none")

	viper.BindPFlag("network.host", rootCmd.PersistentFlags().Lookup("host"))
	viper.BindPFlag("network.port", rootCmd.PersistentFlags().Lookup("port"))
	viper.BindPFlag("transfer.chunk_size", rootCmd.PersistentFlags().Lookup("chunk-size"))
	viper.BindPFlag("ui.progress", rootCmd.PersistentFlags().Lookup("progress"))

	// Set up viper environment variable support, e.g. YATFS_NETWORK_PORT
	viper.SetEnvPrefix("YATFS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			log.Printf("Warning: Could not find home directory: %v", err)
			return
		}

		// Search config in home directory with name ".yatfs" (without extension)
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".yatfs")
	}

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		log.Printf("Using config file: %s", viper.ConfigFileUsed())
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// createContext creates a context that cancels on interrupt signals
func createContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	// Setup signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	return ctx
}

// createServices creates and wires up all the application services
func createServices() (*processor.FileService, *ui.ConsoleUI, app.ProgressDisplayFactory) {
	fileService := processor.NewFileService()
	consoleUI := ui.NewConsoleUI(os.Stdin, os.Stdout)

	var newDisplay app.ProgressDisplayFactory
	switch cfg.UI.Progress {
	case config.ProgressBar:
		newDisplay = func() app.ProgressDisplay { return ui.NewProgressUI(os.Stderr) }
	case config.ProgressNone:
		newDisplay = func() app.ProgressDisplay { return reporter.Discard{} }
	default:
		newDisplay = func() app.ProgressDisplay { return reporter.NewProgressReporter(os.Stdout) }
	}

	return fileService, consoleUI, newDisplay
}

// createSenderApp wires a sender application from the loaded configuration
func createSenderApp() *app.SenderApp {
	fileService, consoleUI, newDisplay := createServices()
	sender := transport.NewSender(cfg, fileService)
	return app.NewSenderApp(cfg, sender, consoleUI, newDisplay)
}

// createReceiverApp wires a receiver application from the loaded configuration
func createReceiverApp() *app.ReceiverApp {
	fileService, consoleUI, newDisplay := createServices()
	receiver := transport.NewReceiver(cfg, fileService)
	return app.NewReceiverApp(cfg, receiver, consoleUI, newDisplay)
}
