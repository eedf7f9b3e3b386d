package cmd

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestValidateSendFlags(t *testing.T) {
	var tests = []struct {
		flags   SendFlags
		wantErr bool
	}{
		{SendFlags{}, false},
		{SendFlags{FilePath: "a.txt", DialTimeout: time.Second}, false},
		{SendFlags{DialTimeout: -time.Second}, true},
	}

	for _, test := range tests {
		if err := validateSendFlags(&test.flags); (err != nil) != test.wantErr {
			t.Errorf("validateSendFlags(%+v) = %v", test.flags, err)
		}
	}
}

func TestValidateReceiveFlags(t *testing.T) {
	dir := t.TempDir()
	defer viper.Set("transfer.output_dir", nil)

	var tests = []struct {
		outDir  string
		flags   ReceiveFlags
		wantErr bool
	}{
		{dir, ReceiveFlags{}, false},
		{filepath.Join(dir, "new"), ReceiveFlags{KeepAlive: true, MaxConnections: 4}, false},
		{dir, ReceiveFlags{MaxConnections: -1}, true},
		{filepath.Join(dir, "missing", "nested"), ReceiveFlags{}, true},
	}

	for _, test := range tests {
		viper.Set("transfer.output_dir", test.outDir)
		if err := validateReceiveFlags(&test.flags); (err != nil) != test.wantErr {
			t.Errorf("validateReceiveFlags(%s, %+v) = %v", test.outDir, test.flags, err)
		}
	}
}
