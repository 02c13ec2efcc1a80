package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"portfolio_engine/internal/domain/entity"
	"portfolio_engine/internal/infrastructure/restapi"

	jsoniter "github.com/json-iterator/go"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the portfolio HTTP API",
		Action: func(c *cli.Context) error {
			e, err := bootstrap(c, true)
			if err != nil {
				return err
			}
			defer e.Close()

			handler := restapi.NewPortfolioHandler(
				e.portfolio,
				e.snapshotReader(),
				e.bans,
				e.logger.With("component", "http"),
				e.cfg.RequestTimeout(),
			)
			router := restapi.SetupRouter(handler, e.cfg, e.zap)

			read, write, idle := e.cfg.ServerTimeouts()
			srv := &http.Server{
				Addr:         ":" + strings.TrimPrefix(e.cfg.Server.Port, ":"),
				Handler:      router,
				ReadTimeout:  read,
				WriteTimeout: write,
				IdleTimeout:  idle,
			}

			serverErr := make(chan error, 1)
			go func() {
				e.zap.Info("Server starting", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
				close(serverErr)
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			select {
			case err := <-serverErr:
				if err != nil {
					return fmt.Errorf("server failed: %w", err)
				}
				return nil
			case <-quit:
			}
			e.zap.Info("Shutting down server...")

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				return fmt.Errorf("server forced to shutdown: %w", err)
			}
			e.zap.Info("Server exiting")
			return nil
		},
	}
}

func snapshotCommand() *cli.Command {
	return &cli.Command{
		Name:      "snapshot",
		Usage:     "Print the aggregated snapshot of one wallet",
		ArgsUsage: "WALLET_ADDRESS",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "chain",
				Aliases: []string{"n"},
				Value:   "ETHEREUM",
				Usage:   "Chain identifier, see the chains command",
			},
			&cli.BoolFlag{
				Name:  "exclude-banned",
				Usage: "Drop tokens on the ban list instead of flagging them",
			},
			&cli.StringFlag{
				Name:  "store",
				Usage: "Also persist the snapshot under this wallet record id",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return fmt.Errorf("wallet address is required")
			}
			address := c.Args().Get(0)
			walletID := c.String("store")

			e, err := bootstrap(c, walletID != "")
			if err != nil {
				return err
			}
			defer e.Close()

			ctx, cancel := e.withTimeout(c.Context)
			defer cancel()

			var snapshot entity.WalletSnapshot
			if walletID != "" {
				snapshot, err = e.portfolio.RefreshWalletRecord(ctx, walletID, address, c.String("chain"))
			} else {
				snapshot, err = e.portfolio.GetWalletSnapshot(ctx, address, c.String("chain"))
			}
			if err != nil {
				return err
			}

			banned, err := e.bans.BannedAddresses(ctx)
			if err != nil {
				e.logger.Warn("Token ban list unavailable", "error", err)
			} else {
				snapshot = snapshot.ApplyBanList(banned, c.Bool("exclude-banned"))
			}
			return printJSON(snapshot)
		},
	}
}

func chainsCommand() *cli.Command {
	return &cli.Command{
		Name:  "chains",
		Usage: "List supported chains",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Aliases: []string{"j"}, Usage: "Output as JSON"},
		},
		Action: func(c *cli.Context) error {
			e, err := bootstrap(c, false)
			if err != nil {
				return err
			}
			defer e.Close()

			chains := e.portfolio.ListSupportedChains()
			if c.Bool("json") {
				return printJSON(chains)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
			for _, chain := range chains {
				fmt.Fprintf(w, "%s\t%s\t%s\n", chain.ID, chain.Name, chain.Description)
			}
			return w.Flush()
		},
	}
}

func scanCommand() *cli.Command {
	return &cli.Command{
		Name:  "scan",
		Usage: "Snapshot every wallet of the wallet file on the given chains",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "chain",
				Aliases: []string{"n"},
				Value:   cli.NewStringSlice("ETHEREUM", "SOLANA"),
				Usage:   "Chain identifiers to scan (repeatable)",
			},
			&cli.StringFlag{
				Name:  "wallets",
				Usage: "Wallet file, one address per line (overrides files.wallets)",
			},
			&cli.BoolFlag{Name: "json", Aliases: []string{"j"}, Usage: "Output as JSON"},
		},
		Action: func(c *cli.Context) error {
			e, err := bootstrap(c, false)
			if err != nil {
				return err
			}
			defer e.Close()
			if path := c.String("wallets"); path != "" {
				e.cfg.Files.Wallets = path
			}

			results, err := e.scanner().Scan(c.Context, c.StringSlice("chain"))
			if err != nil {
				return err
			}
			if c.Bool("json") {
				return printJSON(results)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "WALLET\tCHAIN\tVALUE USD\tASSETS\tNFTS\tERROR")
			for _, r := range results {
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%d\t%d\t%s\n", r.WalletAddress, r.ChainID, r.TotalValueUSD, r.AssetCount, r.NFTCount, r.Error)
			}
			return w.Flush()
		},
	}
}
