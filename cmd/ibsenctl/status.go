package main

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vx-labs/ibsen/ibsen/api"
	"go.uber.org/zap"
)

func Status(ctx context.Context, config *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the storage status of every topic",
		Run: func(cmd *cobra.Command, _ []string) {
			conn, l := mustDial(ctx, cmd, config)
			out, err := api.NewIbsenClient(conn).Status(ctx, &api.StatusRequest{})
			if err != nil {
				l.Fatal("failed to get status", zap.Error(err))
			}
			table := getTable([]string{"Topic", "Segments", "Next offset", "Stored", "Path"}, cmd.OutOrStdout())
			for _, topic := range out.Topics {
				table.Append([]string{
					topic.Topic,
					fmt.Sprintf("%d", topic.SegmentCount),
					fmt.Sprintf("%d", topic.NextOffset),
					humanize.Bytes(topic.StoredBytes),
					topic.Path,
				})
			}
			table.Render()
		},
	}
}
