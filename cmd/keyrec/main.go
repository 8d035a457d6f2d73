//
// Copyright (C) 2025 keyrec authors
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/keyrec/keyrec
//

// keyrec is a thin command line client to the record store, useful for
// poking tables while developing. Connection settings come from the
// environment (KEYREC_REGION, KEYREC_TABLE_<NAME>, optional
// KEYREC_ACCESS_KEY / KEYREC_SECRET_KEY), optionally seeded from .env
// files.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/keyrec/keyrec"
	"github.com/keyrec/keyrec/config"
	"github.com/keyrec/keyrec/service/ddb"
)

var rootCmd = &cobra.Command{
	Use:   "keyrec",
	Short: "typed record store over a DynamoDB table",
}

var getCmd = &cobra.Command{
	Use:   "get [table] [id]",
	Short: "Reads the record behind an identifier",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := storage(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		rec, err := db.Get(cmd.Context(), keyrec.ID(args[1]))
		if err != nil {
			return err
		}
		if rec == nil {
			fmt.Println("not found")
			return nil
		}

		printRecord(rec)
		return nil
	},
}

var createCmd = &cobra.Command{
	Use:   "create [table] [field=value]...",
	Short: "Writes a record, overwriting any existing one behind the same key",
	Long: `Writes a record assembled from field=value arguments. Values are
parsed into the typed variants: whole numbers become numeric scalars,
fractional ones floats, comma separated lists become sets, everything
else is text. A missing key attribute is filled with a fresh uuid.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := storage(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		rec := keyrec.Record{}
		for _, arg := range args[1:] {
			field, val, found := strings.Cut(arg, "=")
			if !found {
				return fmt.Errorf("invalid argument %q, expected field=value", arg)
			}
			rec[field] = parseValue(val)
		}

		key := viper.GetString("key-attribute")
		if _, exists := rec[key]; !exists {
			rec[key] = keyrec.Text(uuid.New().String())
		}

		out, err := db.Create(cmd.Context(), rec)
		if err != nil {
			return err
		}

		printRecord(out)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("key-attribute", "id", "name of the partition key attribute")
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(createCmd)
}

func initConfig() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	viper.SetEnvPrefix("keyrec")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	_ = viper.BindPFlag("key-attribute", rootCmd.PersistentFlags().Lookup("key-attribute"))
}

func storage(ctx context.Context, logical string) (*ddb.Storage, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	table, err := cfg.Table(logical)
	if err != nil {
		return nil, err
	}

	aws, err := cfg.AWS(ctx)
	if err != nil {
		return nil, err
	}

	return ddb.New(
		ddb.WithConfig(aws),
		ddb.WithTable(table),
		ddb.WithHashKey(viper.GetString("key-attribute")),
	)
}

// whole number, fractional number, comma separated set, else text
func parseValue(raw string) keyrec.Value {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return keyrec.Int(i)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return keyrec.Float(f)
	}

	if strings.Contains(raw, ",") {
		seq := strings.Split(raw, ",")

		nums := make(keyrec.NumberSet, 0, len(seq))
		for _, x := range seq {
			f, err := strconv.ParseFloat(x, 64)
			if err != nil {
				return keyrec.TextSet(seq)
			}
			nums = append(nums, f)
		}
		return nums
	}

	return keyrec.Text(raw)
}

func printRecord(rec keyrec.Record) {
	fields := make([]string, 0, len(rec))
	for field := range rec {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		fmt.Printf("%s\t%v\n", field, rec[field])
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
