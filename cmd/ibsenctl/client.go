package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path"
	"time"

	consulapi "github.com/hashicorp/consul/api"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
)

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return path.Join(home, ".config", "ibsenctl")
}

func getLogger(config *viper.Viper) *zap.Logger {
	opts := zap.NewDevelopmentConfig()
	opts.DisableStacktrace = true
	if !config.GetBool("debug") {
		opts.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := opts.Build()
	if err != nil {
		panic(err)
	}
	return logger
}

func getTable(headers []string, w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	return table
}

// findPeer returns the address of a healthy ibsen instance registered in Consul.
func findPeer(service, tag string) (string, error) {
	client, err := consulapi.NewClient(consulapi.DefaultConfig())
	if err != nil {
		return "", err
	}
	services, _, err := client.Health().Service(service, tag, true, nil)
	if err != nil {
		return "", err
	}
	if len(services) == 0 {
		return "", errors.Errorf("no healthy instance of service %q found", service)
	}
	entry := services[rand.Intn(len(services))]
	address := entry.Service.Address
	if address == "" {
		address = entry.Node.Address
	}
	return fmt.Sprintf("%s:%d", address, entry.Service.Port), nil
}

func dialOptions(config *viper.Viper) ([]grpc.DialOption, error) {
	if !config.GetBool("tls") {
		return []grpc.DialOption{grpc.WithInsecure()}, nil
	}
	caFile := config.GetString("rpc-tls-certificate-authority-file")
	if caFile == "" {
		return []grpc.DialOption{grpc.WithTransportCredentials(credentials.NewTLS(&tls.Config{}))}, nil
	}
	creds, err := credentials.NewClientTLSFromFile(caFile, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to load rpc certificate authority")
	}
	return []grpc.DialOption{grpc.WithTransportCredentials(creds)}, nil
}

func mustDial(ctx context.Context, cmd *cobra.Command, config *viper.Viper) (*grpc.ClientConn, *zap.Logger) {
	l := getLogger(config)
	host := config.GetString("host")
	if config.GetBool("use-consul") {
		var err error
		host, err = findPeer(config.GetString("consul-service-name"), config.GetString("consul-service-tag"))
		if err != nil {
			l.Fatal("failed to find ibsen server using Consul", zap.Error(err))
		}
	}
	opts, err := dialOptions(config)
	if err != nil {
		l.Fatal("failed to build rpc credentials", zap.Error(err))
	}
	dialCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	conn, err := grpc.DialContext(dialCtx, host, append(opts, grpc.WithBlock())...)
	if err != nil {
		l.Fatal("failed to dial ibsen server", zap.String("remote_host", host), zap.Error(err))
	}
	return conn, l.With(zap.String("remote_host", host))
}
