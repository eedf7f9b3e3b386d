package app

import (
	"context"
	"fmt"

	"yatfs/internal/config"
	"yatfs/internal/transport"
	"yatfs/internal/ui"
	"yatfs/pkg/utils"
)

const pathPrompt = "Enter path of your file: "

// SenderOptions configures the sender application behavior
type SenderOptions struct {
	FilePath string // Optional: prompted for on the console when empty
}

// SenderApp implements sender application logic
type SenderApp struct {
	config     *config.Config
	sender     *transport.Sender
	ui         *ui.ConsoleUI
	newDisplay ProgressDisplayFactory
}

// NewSenderApp creates a new sender application
func NewSenderApp(
	cfg *config.Config,
	sender *transport.Sender,
	ui *ui.ConsoleUI,
	newDisplay ProgressDisplayFactory,
) *SenderApp {
	return &SenderApp{
		config:     cfg,
		sender:     sender,
		ui:         ui,
		newDisplay: newDisplay,
	}
}

// Run sends one file. A missing file is reported on the console and is not
// an error; no connection is attempted in that case.
func (s *SenderApp) Run(ctx context.Context, opts *SenderOptions) error {
	filePath := opts.FilePath
	if filePath == "" {
		var err error
		if filePath, err = s.ui.InputPath(ctx, pathPrompt); err != nil {
			return err
		}
	}

	if !utils.FileExists(filePath) {
		s.ui.Println("File does not exist!")
		return nil
	}

	s.ui.ShowMessage(fmt.Sprintf("Preparing to send file: %s to %s", filePath, s.config.Address()))

	progressCh, wait := trackProgress(ctx, s.newDisplay)
	result, err := s.sender.Send(ctx, filePath, progressCh)
	close(progressCh)
	wait()

	if err != nil {
		return fmt.Errorf("failed to send file: %w", err)
	}

	s.ui.Println(fmt.Sprintf("File %s sent successfully!", result.Name))
	return nil
}
