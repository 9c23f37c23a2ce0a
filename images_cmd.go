package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/FunnyShadow/pterodactyl-files/config"
	"github.com/FunnyShadow/pterodactyl-files/images"
)

func imagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "images",
		Short: "Build, push or delete the runtime image matrix",
	}

	var (
		push  bool
		proxy string
	)

	build := &cobra.Command{
		Use:       "build <region>",
		Short:     "Build every runtime image",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"china", "global"},
		RunE: func(cmd *cobra.Command, args []string) error {
			b := newBuilder()
			b.Region = args[0]
			b.Push = push
			b.Proxy = proxy

			failed := b.BuildAll(cmd.Context(), matrix())
			if failed > 0 {
				return fmt.Errorf("%d images failed to build", failed)
			}
			return nil
		},
	}
	build.Flags().BoolVarP(&push, "push", "p", false, "push images after building")
	build.Flags().StringVar(&proxy, "http-proxy", "", "http proxy url used during builds")

	pushCmd := &cobra.Command{
		Use:   "push",
		Short: "Push every runtime image",
		RunE: func(cmd *cobra.Command, args []string) error {
			if failed := newBuilder().PushAll(cmd.Context(), matrix()); failed > 0 {
				return fmt.Errorf("%d images failed to push", failed)
			}
			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete every runtime image from the local daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			if failed := newBuilder().DeleteAll(cmd.Context(), matrix()); failed > 0 {
				return fmt.Errorf("%d images failed to delete", failed)
			}
			return nil
		},
	}

	cmd.AddCommand(build, pushCmd, deleteCmd)

	return cmd
}

func newBuilder() *images.Builder {
	return &images.Builder{
		Docker:  viper.GetString(config.DockerBinary),
		Workers: viper.GetInt(config.DockerWorkers),
	}
}

func matrix() []images.Image {
	return images.Matrix(viper.GetString(config.DockerRegistry))
}
