// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/lstsync/pkg/ux"
	"github.com/AleutianAI/lstsync/services/lst/java/remote"
)

var kindsJSONOutput bool

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the Java node kinds and their wire type tags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		kinds := remote.Kinds()
		out := cmd.OutOrStdout()
		if kindsJSONOutput {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(kinds)
		}
		tbl := ux.NewTable("KIND", "TAG")
		for _, k := range kinds {
			tbl.Row(k.Kind, k.Tag)
		}
		return ux.NewPrinter(out).Table(tbl)
	},
}

func init() {
	kindsCmd.Flags().BoolVar(&kindsJSONOutput, "json", false, "Output as JSON")
	rootCmd.AddCommand(kindsCmd)
}
