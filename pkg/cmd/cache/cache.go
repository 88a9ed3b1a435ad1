// Package cache provides the cache maintenance commands.
package cache

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/tomvill/f1-analytics/pkg/api"
	"github.com/tomvill/f1-analytics/pkg/config"
)

func NewCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "manage the on-disk response cache",
	}
	cmd.AddCommand(newInfoCmd())
	cmd.AddCommand(newClearCmd())
	return cmd
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "show cache location and size",
		RunE: func(cmd *cobra.Command, args []string) error {
			cache, err := api.NewDiskCache(config.CacheDir)
			if err != nil {
				return err
			}
			info := cache.Info()
			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendRows([]table.Row{
				{"Directory", cache.Dir()},
				{"Entries", info.FileCount},
				{"Size", fmt.Sprintf("%d bytes", info.SizeBytes)},
			})
			t.Render()
			return nil
		},
	}
}

func newClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "remove all cached responses",
		RunE: func(cmd *cobra.Command, args []string) error {
			cache, err := api.NewDiskCache(config.CacheDir)
			if err != nil {
				return err
			}
			info := cache.Info()
			if err := cache.Clear(); err != nil {
				return err
			}
			fmt.Printf("removed %d cached entries\n", info.FileCount)
			return nil
		},
	}
}
