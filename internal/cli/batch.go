package cli

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"schema-context/internal/app"
)

type batchOptions struct {
	InputDir      string
	OutputDir     string
	Namespace     string
	NsURI         string
	ExtraContexts []string
	MergedName    string
}

func newBatchCommand() *cobra.Command {
	opts := batchOptions{}
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Convert a directory of schema documents and write a merged context",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBatch(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.InputDir, "input-dir", "", "Directory containing schema documents")
	cmd.Flags().StringVar(&opts.OutputDir, "output-dir", "", "Output directory (defaults to the input directory)")
	cmd.Flags().StringVar(&opts.Namespace, "namespace", "", "Namespace prefix for generated @id values")
	cmd.Flags().StringVar(&opts.NsURI, "nsuri", "", "Namespace URI the prefix expands to")
	cmd.Flags().StringSliceVar(&opts.ExtraContexts, "context", nil, "Extra context entries appended to the merged document")
	cmd.Flags().StringVar(&opts.MergedName, "merged-name", "context.json", "Filename of the merged context document")
	_ = viper.BindPFlag("input_dir", cmd.Flags().Lookup("input-dir"))
	_ = viper.BindPFlag("output_dir", cmd.Flags().Lookup("output-dir"))
	_ = viper.BindPFlag("namespace", cmd.Flags().Lookup("namespace"))
	_ = viper.BindPFlag("nsuri", cmd.Flags().Lookup("nsuri"))
	_ = viper.BindPFlag("contexts", cmd.Flags().Lookup("context"))
	_ = viper.BindPFlag("merged_name", cmd.Flags().Lookup("merged-name"))
	return cmd
}

func runBatch(ctx context.Context, cmd *cobra.Command, opts batchOptions) error {
	service := app.NewService()
	result, err := service.Batch(ctx, app.BatchRequest{
		InputDir:      resolveString(cmd, opts.InputDir, "input_dir", "input-dir"),
		OutputDir:     resolveString(cmd, opts.OutputDir, "output_dir", "output-dir"),
		Namespace:     resolveString(cmd, opts.Namespace, "namespace", "namespace"),
		NamespaceURI:  resolveString(cmd, opts.NsURI, "nsuri", "nsuri"),
		ExtraContexts: resolveStrings(cmd, opts.ExtraContexts, "contexts", "context"),
		MergedName:    resolveString(cmd, opts.MergedName, "merged_name", "merged-name"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("converted: %d, failed: %d, merged: %s\n", result.Converted, result.Failed, result.MergedPath)
	if result.Failed > 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("%d of %d schema documents failed", result.Failed, result.Failed+result.Converted))
	}
	return nil
}
