package cmd

import (
	"context"
	"errors"

	"github.com/pyneda/soapgen/pkg/wsdl"
	"github.com/spf13/cobra"
)

var (
	sourceURLs    []string
	sourceHeaders map[string]string
)

func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&sourceURLs, "url", "u", nil, "WSDL or schema URL to fetch. Can be added multiple times.")
	cmd.Flags().StringToStringVarP(&sourceHeaders, "header", "H", nil, "Header sent when fetching URLs, as name=value. Can be added multiple times.")
}

// loadCollection loads the given files followed by every --url
func loadCollection(ctx context.Context, files []string) (*wsdl.Collection, error) {
	sources := make([]string, 0, len(files)+len(sourceURLs))
	sources = append(sources, files...)
	sources = append(sources, sourceURLs...)
	if len(sources) == 0 {
		return nil, errors.New("at least one file or --url is required")
	}
	return wsdl.NewLoader().WithHeaders(sourceHeaders).Load(ctx, sources...)
}
