package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jsxtrace/encode"
)

var codecKey string

var decodeCmd = &cobra.Command{
	Use:   "decode <payload>",
	Short: "Decode an encoded trace payload",
	Long: `Decode a provenance payload previously embedded into a generated
attribute, printing the underlying JSON.

Example:
  jsxtrace decode "GxAJBQ..." --key=mykey`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

var encodeCmd = &cobra.Command{
	Use:   "encode <payload>",
	Short: "Encode a trace payload for attribute embedding",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncode,
}

func init() {
	decodeCmd.Flags().StringVar(&codecKey, "key", "", "Codec key (default: built-in)")
	encodeCmd.Flags().StringVar(&codecKey, "key", "", "Codec key (default: built-in)")
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(encodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	payload, err := encode.NewCodec(codecKey).Decode(args[0])
	if err != nil {
		return err
	}
	fmt.Println(string(payload))
	return nil
}

func runEncode(cmd *cobra.Command, args []string) error {
	fmt.Println(encode.NewCodec(codecKey).Encode([]byte(args[0])))
	return nil
}
