package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vx-labs/ibsen/ibsen/api"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const entryTemplate = `• {{ .Offset | green }} {{ .Timestamp | parseDate | faint }}
  {{ .Payload | bytesToString | bold }}`

func Topics(ctx context.Context, config *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use: "topics",
	}
	list := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Run: func(cmd *cobra.Command, _ []string) {
			conn, l := mustDial(ctx, cmd, config)
			out, err := api.NewIbsenClient(conn).ListTopics(ctx, &api.ListTopicsRequest{})
			if err != nil {
				l.Fatal("failed to list topics", zap.Error(err))
			}
			for _, topic := range out.Topics {
				fmt.Fprintln(cmd.OutOrStdout(), topic)
			}
		},
	}
	cmd.AddCommand(list)

	create := &cobra.Command{
		Use:   "create <topic>",
		Short: "Create an empty topic",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			conn, l := mustDial(ctx, cmd, config)
			out, err := api.NewIbsenClient(conn).Create(ctx, &api.CreateRequest{Topic: args[0]})
			if err != nil {
				l.Fatal("failed to create topic", zap.Error(err))
			}
			if !out.Created {
				l.Warn("topic already exists", zap.String("topic", args[0]))
				return
			}
			l.Info("topic created", zap.String("topic", args[0]))
		},
	}
	cmd.AddCommand(create)

	drop := &cobra.Command{
		Use:   "drop <topic>",
		Short: "Delete a topic and all its entries",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			conn, l := mustDial(ctx, cmd, config)
			out, err := api.NewIbsenClient(conn).Drop(ctx, &api.DropRequest{Topic: args[0]})
			if err != nil {
				l.Fatal("failed to drop topic", zap.Error(err))
			}
			if !out.Dropped {
				l.Warn("topic not found", zap.String("topic", args[0]))
				return
			}
			l.Info("topic dropped", zap.String("topic", args[0]))
		},
	}
	cmd.AddCommand(drop)

	write := &cobra.Command{
		Use:   "write <topic> [payload]...",
		Short: "Append payloads to a topic, reading one payload per line from stdin when none is provided",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			conn, l := mustDial(ctx, cmd, config)
			entries := make([][]byte, 0, len(args)-1)
			for _, payload := range args[1:] {
				entries = append(entries, []byte(payload))
			}
			if len(entries) == 0 && config.GetBool("stream") {
				out, err := streamLines(ctx, api.NewIbsenClient(conn), args[0], cmd.InOrStdin())
				if err != nil {
					l.Fatal("failed to stream entries", zap.Error(err))
				}
				l.Info("entries written", zap.Int64("wrote", out.Wrote), zap.String("topic", args[0]))
				return
			}
			if len(entries) == 0 {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					entries = append(entries, append([]byte(nil), scanner.Bytes()...))
				}
				if err := scanner.Err(); err != nil {
					l.Fatal("failed to read stdin", zap.Error(err))
				}
			}
			out, err := api.NewIbsenClient(conn).Write(ctx, &api.WriteRequest{
				Topic:   args[0],
				Entries: entries,
			})
			if err != nil {
				l.Fatal("failed to write entries", zap.Error(err))
			}
			l.Info("entries written", zap.Int64("wrote", out.Wrote), zap.String("topic", args[0]))
		},
	}
	write.Flags().Bool("stream", false, "Write each stdin line as soon as it is read, instead of in a single batch.")
	cmd.AddCommand(write)

	read := &cobra.Command{
		Use:   "read <topic>",
		Short: "Read entries from a topic",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()
			sigc := make(chan os.Signal, 1)
			signal.Notify(sigc, os.Interrupt)
			go func() {
				select {
				case <-sigc:
					cancel()
				case <-ctx.Done():
				}
			}()
			conn, l := mustDial(ctx, cmd, config)
			stream, err := api.NewIbsenClient(conn).Read(ctx, &api.ReadRequest{
				Topic:     args[0],
				Offset:    config.GetInt64("offset"),
				BatchSize: uint32(config.GetInt("batch-size")),
				Follow:    config.GetBool("follow"),
			})
			if err != nil {
				l.Fatal("failed to start stream", zap.Error(err))
			}
			tpl := ParseTemplate(config.GetString("format"))
			for {
				msg, err := stream.Recv()
				if err == io.EOF {
					return
				}
				if err != nil {
					if status.Code(err) == codes.Canceled {
						return
					}
					l.Fatal("failed to read entries", zap.Error(err))
				}
				for _, entry := range msg.Entries {
					tpl.Execute(cmd.OutOrStdout(), entry)
				}
			}
		},
	}
	read.Flags().Int64("offset", 0, "Read entries starting from this offset.")
	read.Flags().Int("batch-size", 0, "Maximum number of entries per batch. 0 uses the server default.")
	read.Flags().BoolP("follow", "f", false, "Keep waiting for new entries once the end of the topic is reached.")
	read.Flags().String("format", entryTemplate, "Format each entry using Golang template format.")
	cmd.AddCommand(read)
	return cmd
}

// streamLines writes every line of r to topic as its own batch.
func streamLines(ctx context.Context, client api.IbsenClient, topic string, r io.Reader) (*api.WriteResponse, error) {
	stream, err := client.WriteStream(ctx)
	if err != nil {
		return nil, err
	}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		err := stream.Send(&api.WriteRequest{Topic: topic, Entries: [][]byte{append([]byte(nil), scanner.Bytes()...)}})
		if err == io.EOF {
			// The server ended the call, CloseAndRecv reports why.
			break
		}
		if err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return stream.CloseAndRecv()
}
