package types

// FileMetadata describes the file announced by the transfer header
type FileMetadata struct {
	Name string // Base name of the file
	Size int64  // Declared payload size in bytes
}

// Direction of a transfer as seen by the local process
type Direction string

const (
	Sending   Direction = "Sent"
	Receiving Direction = "Received"
)

// ProgressUpdate represents raw file transfer progress data
type ProgressUpdate struct {
	TransferID string
	Direction  Direction
	NewBytes   uint64        // New bytes transferred in this update
	MetaData   *FileMetadata // This should only be sent once at the start
}
