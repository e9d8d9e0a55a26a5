// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/z5labs/outcome"
	"github.com/z5labs/outcome/async"
	"github.com/z5labs/outcome/result"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sony/gobreaker"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type fetchStats struct {
	URL    string
	Status int
	Bytes  int64
}

func fetch(ctx context.Context, client *retryablehttp.Client, cb *gobreaker.CircuitBreaker, url string) result.Result[fetchStats, string] {
	v, err := cb.Execute(func() (any, error) {
		req, err := retryablehttp.NewRequest(http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}

		resp, err := client.Do(req.WithContext(ctx))
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		n, err := io.Copy(io.Discard, resp.Body)
		if err != nil {
			return nil, err
		}
		return fetchStats{URL: url, Status: resp.StatusCode, Bytes: n}, nil
	})
	if err != nil {
		return result.Err[fetchStats](url + ": " + err.Error())
	}
	return result.Ok[string](v.(fetchStats))
}

func run(ctx context.Context, log *zap.Logger, urls []string) error {
	timeout := viper.GetDuration("timeout")
	retries := viper.GetInt("retries")

	client := retryablehttp.NewClient()
	client.RetryMax = retries
	client.Logger = nil

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: "fetch",
	})

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	promises := make([]*async.Promise[result.Result[fetchStats, string]], len(urls))
	for i, url := range urls {
		p := async.NewPromise[result.Result[fetchStats, string]]()
		promises[i] = p

		g.Go(func() error {
			p.Resolve(fetch(gctx, client, cb, url))
			return nil
		})
	}

	for _, p := range promises {
		task := async.TapErr(
			async.TapResult[fetchStats, string](p, func(s fetchStats) async.Task[outcome.Unit] {
				log.Info("fetched",
					zap.String("url", s.URL),
					zap.Int("status", s.Status),
					zap.Int64("bytes", s.Bytes),
				)
				return async.Resolved(outcome.Unit{})
			}),
			func(e string) async.Task[outcome.Unit] {
				log.Warn("fetch failed", zap.String("reason", e))
				return async.Resolved(outcome.Unit{})
			},
		)

		if _, err := task.Await(ctx); err != nil {
			return err
		}
	}

	return g.Wait()
}

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	cmd := &cobra.Command{
		Use:          "fetch [urls...]",
		Short:        "Fetch URLs and report each outcome as a Result",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), log, args)
		},
	}

	cmd.Flags().Duration("timeout", 30*time.Second, "overall deadline for all fetches")
	cmd.Flags().Int("retries", 3, "max retries per request")
	viper.BindPFlag("timeout", cmd.Flags().Lookup("timeout"))
	viper.BindPFlag("retries", cmd.Flags().Lookup("retries"))

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		log.Error("fetch failed", zap.Error(err))
		os.Exit(1)
	}
}
