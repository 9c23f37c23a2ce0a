package main

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/FunnyShadow/pterodactyl-files/convert"
)

func convertCommand() *cobra.Command {
	var (
		mode      string
		file      string
		directory string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert egg documents between YAML and JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			direction, err := convert.ParseDirection(mode)
			if err != nil {
				return err
			}

			if (file == "") == (directory == "") {
				return fmt.Errorf("exactly one of --file and --directory is required")
			}

			if file != "" {
				dest := direction.OutputPath(file)
				if output != "" {
					dest = filepath.Join(output, filepath.Base(dest))
				}
				if err := convert.Convert(file, dest); err != nil {
					return err
				}
				log.WithField("file", dest).Info("Converted 1 file.")
				return nil
			}

			res, err := convert.ConvertTree(directory, output, direction)
			if err != nil {
				return err
			}

			log.WithFields(logrus.Fields{
				"converted": res.Converted,
				"failed":    len(res.Failures),
			}).Info("Batch conversion finished.")

			if res.Failed() {
				return fmt.Errorf("%d of %d files failed to convert",
					len(res.Failures), res.Converted+len(res.Failures))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "", "conversion mode (y2j or j2y)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "single file to convert")
	cmd.Flags().StringVarP(&directory, "directory", "d", "", "directory to convert recursively")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output directory (defaults to in place)")
	cmd.MarkFlagRequired("mode")

	return cmd
}
