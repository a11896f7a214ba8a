package cli

import (
	"bufio"
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"canopy/api"
	"canopy/merkle"
)

var buildFile string

func init() {
	buildCmd.Flags().StringVarP(&buildFile, "file", "f", "", "read one leaf value per line from FILE instead of args")
}

var buildCmd = &cobra.Command{
	Use:   "build [VALUE...]",
	Short: "Build a tree over the given leaf values and print the root digest",
	RunE: func(cmd *cobra.Command, args []string) error {
		values := make([][]byte, 0, len(args))
		for _, arg := range args {
			values = append(values, []byte(arg))
		}

		if buildFile != "" {
			file, err := os.Open(buildFile)
			if err != nil {
				return err
			}
			defer file.Close()

			scanner := bufio.NewScanner(file)
			for scanner.Scan() {
				values = append(values, append([]byte(nil), scanner.Bytes()...))
			}
			if err := scanner.Err(); err != nil {
				return err
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		root, err := Client().Build(ctx, &wrapperspb.BytesValue{Value: api.EncodeValues(values)})
		if err == nil {
			fmt.Println(hex.EncodeToString(root.Value))
		}

		return err
	},
}

var digestCmd = &cobra.Command{
	Use:   "root",
	Short: "Print the current root digest",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
		defer cancel()

		root, err := Client().Root(ctx, &emptypb.Empty{})
		if err == nil {
			fmt.Println(hex.EncodeToString(root.Value))
		}

		return err
	},
}

var getCmd = &cobra.Command{
	Use:   "get ID",
	Short: "Get the leaf value at input position ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %s: %w", args[0], err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
		defer cancel()

		leaf, err := Client().GetLeaf(ctx, &wrapperspb.UInt64Value{Value: id})
		if err == nil {
			fmt.Println(string(leaf.Value))
		}

		return err
	},
}

var proofCmd = &cobra.Command{
	Use:   "proof ID",
	Short: "Print the inclusion proof for the leaf at input position ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %s: %w", args[0], err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
		defer cancel()

		raw, err := Client().GetProof(ctx, &wrapperspb.UInt64Value{Value: id})
		if err != nil {
			return err
		}

		proof, err := merkle.UnmarshalProof(raw.Value)
		if err != nil {
			return err
		}

		for _, step := range proof {
			side := "right"
			if step.Left {
				side = "left"
			}
			fmt.Printf("%s %s\n", side, hex.EncodeToString(step.Digest))
		}

		return nil
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify ID VALUE",
	Short: "Verify locally that VALUE is the leaf at position ID under the current root",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %s: %w", args[0], err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
		defer cancel()

		raw, err := Client().GetProof(ctx, &wrapperspb.UInt64Value{Value: id})
		if err != nil {
			return err
		}

		proof, err := merkle.UnmarshalProof(raw.Value)
		if err != nil {
			return err
		}

		root, err := Client().Root(ctx, &emptypb.Empty{})
		if err != nil {
			return err
		}

		if !merkle.VerifyProof([]byte(args[1]), proof, root.Value) {
			return fmt.Errorf("verification failed for leaf %d", id)
		}

		fmt.Println("ok")
		return nil
	},
}
