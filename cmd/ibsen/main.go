package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpc_zap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpc_ctxtags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vx-labs/ibsen/commitlog"
	"github.com/vx-labs/ibsen/ibsen"
	"github.com/vx-labs/ibsen/ibsen/stats"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

var BuiltVersion = "dev"

func grpcServer(logger *zap.Logger) *grpc.Server {
	server := grpc.NewServer(
		grpc.StreamInterceptor(grpc_middleware.ChainStreamServer(
			grpc_ctxtags.StreamServerInterceptor(),
			grpc_prometheus.StreamServerInterceptor,
			grpc_zap.StreamServerInterceptor(logger),
			grpc_recovery.StreamServerInterceptor(),
		)),
		grpc.UnaryInterceptor(grpc_middleware.ChainUnaryServer(
			grpc_ctxtags.UnaryServerInterceptor(),
			grpc_prometheus.UnaryServerInterceptor,
			grpc_zap.UnaryServerInterceptor(logger),
			grpc_recovery.UnaryServerInterceptor(),
		)),
	)
	return server
}

func main() {
	config := viper.New()
	config.SetEnvPrefix("IBSEN")
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	config.AutomaticEnv()
	cmd := cobra.Command{
		Use: "ibsen",
		PreRun: func(cmd *cobra.Command, _ []string) {
			config.BindPFlags(cmd.Flags())
		},
		Run: func(cmd *cobra.Command, _ []string) {
			ctx, cancel := context.WithCancel(context.Background())
			ctx = ibsen.StoreLogger(ctx, getLogger(config))
			datadir := config.GetString("data-dir")
			err := os.MkdirAll(datadir, 0700)
			if err != nil {
				ibsen.L(ctx).Fatal("failed to create data directory", zap.Error(err))
			}
			lock, err := ibsen.AcquireLock(ctx, datadir, 3*time.Second)
			if err != nil {
				ibsen.L(ctx).Fatal("failed to lock data directory", zap.Error(err))
			}
			ctx = ibsen.AddFields(ctx, zap.String("instance_id", lock.ID))
			if config.GetBool("pprof") {
				address := fmt.Sprintf("%s:%d", config.GetString("pprof-address"), config.GetInt("pprof-port"))
				go func() {
					mux := http.NewServeMux()
					mux.HandleFunc("/debug/pprof/", pprof.Index)
					mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
					mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
					mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
					mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
					panic(http.ListenAndServe(address, mux))
				}()
				ibsen.L(ctx).Info("started pprof", zap.String("pprof_url", fmt.Sprintf("http://%s/", address)))
			}
			engine, err := ibsen.NewEngine(ctx, ibsen.Config{
				DataDir:           datadir,
				SegmentMaxEntries: uint64(config.GetInt64("segment-max-entries")),
				SegmentMaxBytes:   uint64(config.GetInt64("segment-max-bytes")),
				TopicMaxBytes:     uint64(config.GetInt64("topic-max-bytes")),
			})
			if err != nil {
				ibsen.L(ctx).Fatal("failed to open data directory", zap.Error(err))
			}
			healthServer := health.NewServer()
			healthServer.SetServingStatus("node", healthpb.HealthCheckResponse_SERVING)
			healthServer.SetServingStatus("rpc", healthpb.HealthCheckResponse_NOT_SERVING)

			server := grpcServer(ibsen.L(ctx))
			healthpb.RegisterHealthServer(server, healthServer)
			ibsen.NewServer(engine).Serve(server)
			grpc_prometheus.Register(server)

			listener, err := net.Listen("tcp", net.JoinHostPort("::", fmt.Sprintf("%d", config.GetInt("grpc-port"))))
			if err != nil {
				ibsen.L(ctx).Fatal("rpc listener failed to start", zap.Error(err))
			}
			go func() {
				err := server.Serve(listener)
				if err != nil {
					ibsen.L(ctx).Fatal("rpc listener crashed", zap.Error(err))
				}
			}()

			var httpServer *http.Server
			if port := config.GetInt("http-port"); port > 0 {
				if !config.GetBool("debug") {
					gin.SetMode(gin.ReleaseMode)
				}
				httpServer = &http.Server{
					Addr:    net.JoinHostPort("::", fmt.Sprintf("%d", port)),
					Handler: ibsen.NewHTTPGateway(engine, ibsen.L(ctx)).Routes(),
				}
				go func() {
					err := httpServer.ListenAndServe()
					if err != nil && err != http.ErrServerClosed {
						ibsen.L(ctx).Fatal("http listener crashed", zap.Error(err))
					}
				}()
			}
			if port := config.GetInt("metrics-port"); port > 0 {
				go func() {
					err := stats.ListenAndServe(port)
					if err != nil {
						ibsen.L(ctx).Error("metrics listener crashed", zap.Error(err))
					}
				}()
			}
			collectorDone := make(chan struct{})
			if broker := config.GetString("mqtt-broker"); broker != "" {
				collector, err := ibsen.MQTTCollector(engine, ibsen.CollectorConfig{
					Broker:   broker,
					Username: config.GetString("mqtt-username"),
					Password: config.GetString("mqtt-password"),
					Pattern:  config.GetString("mqtt-pattern"),
					Prefix:   config.GetString("mqtt-topic-prefix"),
				})
				if err != nil {
					ibsen.L(ctx).Fatal("failed to create mqtt collector", zap.Error(err))
				}
				go func() {
					defer close(collectorDone)
					err := collector.Run(ibsen.AddFields(ctx, zap.String("mqtt_broker", broker)))
					if err != nil {
						ibsen.L(ctx).Error("mqtt collector failed", zap.Error(err))
					}
				}()
			} else {
				close(collectorDone)
			}
			healthServer.Resume()
			ibsen.L(ctx).Info("ibsen started",
				zap.Int("grpc_port", config.GetInt("grpc-port")),
				zap.Int("http_port", config.GetInt("http-port")),
				zap.Strings("topics", engine.ListTopics()))

			sigc := make(chan os.Signal, 1)
			signal.Notify(sigc,
				syscall.SIGINT,
				syscall.SIGTERM,
				syscall.SIGQUIT)
			<-sigc
			ibsen.L(ctx).Info("ibsen shutdown initiated")
			cancel()
			<-collectorDone
			ibsen.L(ctx).Debug("mqtt collector stopped")
			healthServer.Shutdown()
			ibsen.L(ctx).Debug("health server stopped")
			engine.CancelReads()
			go func() {
				<-time.After(1 * time.Second)
				server.Stop()
			}()
			server.GracefulStop()
			ibsen.L(ctx).Debug("rpc server stopped")
			if httpServer != nil {
				shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
				err = httpServer.Shutdown(shutdownCtx)
				cancelShutdown()
				if err != nil {
					ibsen.L(ctx).Error("failed to stop http server", zap.Error(err))
				} else {
					ibsen.L(ctx).Debug("http server stopped")
				}
			}
			err = engine.Close()
			if err != nil {
				ibsen.L(ctx).Error("failed to close topics", zap.Error(err))
			} else {
				ibsen.L(ctx).Debug("topics closed")
			}
			err = lock.Release()
			if err != nil {
				ibsen.L(ctx).Error("failed to release data directory lock", zap.Error(err))
			}
			ibsen.L(ctx).Info("ibsen successfully stopped")
		},
	}
	cmd.Flags().Bool("pprof", false, "Start pprof endpoint.")
	cmd.Flags().Int("pprof-port", 8080, "Profiling (pprof) port.")
	cmd.Flags().String("pprof-address", "127.0.0.1", "Profiling (pprof) address.")
	cmd.Flags().Bool("debug", false, "Use a fancy logger and increase logging level.")
	cmd.Flags().StringP("data-dir", "d", "/tmp/ibsen", "Ibsen persistent data location.")
	cmd.Flags().Int("grpc-port", 1899, "Serve the GRPC API on this port.")
	cmd.Flags().Int("http-port", 8090, "Serve the HTTP API on this port. 0 disables it.")
	cmd.Flags().Int("metrics-port", 0, "Start Prometheus HTTP metrics server on this port.")
	cmd.Flags().Int64("segment-max-entries", int64(commitlog.DefaultSegmentMaxEntries), "Maximum number of entries stored in a segment.")
	cmd.Flags().Int64("segment-max-bytes", int64(commitlog.DefaultSegmentMaxBytes), "Rotate segments once they hold this many bytes. 0 disables it.")
	cmd.Flags().Int64("topic-max-bytes", 0, "Maximum number of bytes stored in a topic. 0 means unlimited.")
	cmd.Flags().String("mqtt-broker", "", "Collect messages from this MQTT broker (example: tcp://127.0.0.1:1883).")
	cmd.Flags().String("mqtt-username", "", "MQTT username.")
	cmd.Flags().String("mqtt-password", "", "MQTT password.")
	cmd.Flags().String("mqtt-pattern", "#", "MQTT subscription pattern.")
	cmd.Flags().String("mqtt-topic-prefix", "", "Prefix prepended to topics derived from MQTT topics.")
	cmd.AddCommand(Dump(config))
	cmd.Execute()
}
