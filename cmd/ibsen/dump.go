package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vx-labs/ibsen/commitlog"
	"go.uber.org/zap"
)

// Dump prints every entry stored in the provided segment files.
func Dump(config *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump [segment.log]...",
		Short: "Print the entries stored in segment files",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			logger := getLogger(config)
			for _, filename := range args {
				err := dumpSegment(cmd.OutOrStdout(), filename, config.GetBool("payload"))
				if err != nil {
					logger.Fatal("failed to dump segment", zap.String("segment", filename), zap.Error(err))
				}
			}
		},
	}
	cmd.Flags().Bool("payload", false, "Print entry payloads.")
	cmd.PreRun = func(cmd *cobra.Command, _ []string) {
		config.BindPFlags(cmd.Flags())
	}
	return cmd
}

func dumpSegment(w io.Writer, filename string, withPayload bool) error {
	fd, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fd.Close()
	decoder := commitlog.NewDecoder(fd)
	var count uint64
	for {
		entry, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err == io.ErrUnexpectedEOF {
			fmt.Fprintf(w, "torn entry at position %d\n", decoder.Position())
			break
		}
		if err != nil {
			return err
		}
		status := "ok"
		if !entry.IsValid() {
			status = "corrupted"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", entry.Offset(),
			time.Unix(0, int64(entry.Timestamp())).Format(time.RFC3339Nano),
			humanize.Bytes(entry.Size()), status)
		if withPayload {
			fmt.Fprintf(w, "\t%q\n", entry.Payload())
		}
		count++
	}
	fmt.Fprintf(w, "%s: %d entries, %s\n", filename, count, humanize.Bytes(decoder.Position()))
	return nil
}
