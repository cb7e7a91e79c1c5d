/*
Command objzdump loads a Wavefront OBJ file and prints summary counts,
built on cobra/pflag for flag parsing and subcommand conventions.

See also: https://github.com/udhos/objz
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/udhos/objz"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var force32 bool
	var exportPath string

	cmd := &cobra.Command{
		Use:   "objzdump <file.obj>",
		Short: "Load a Wavefront OBJ file and print summary counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			cfg := &objz.Config{
				Logger: func(msg string) { fmt.Fprintln(os.Stderr, msg) },
			}
			if force32 {
				cfg.IndexFormat = objz.IndexFormatU32
			}

			m, err := objz.Load(path, cfg)
			if err != nil {
				return fmt.Errorf("objzdump: %s: %w", path, err)
			}

			fmt.Printf("objects=%d meshes=%d materials=%d\n", len(m.Objects), len(m.Meshes), len(m.Materials))
			fmt.Printf("vertices=%d indices=%d (index32=%v)\n", m.NumVertices, m.Indices.Len(), m.Flags.Has(objz.FlagIndex32))
			fmt.Printf("texcoords=%v normals=%v\n", m.Flags.Has(objz.FlagTexcoords), m.Flags.Has(objz.FlagNormals))
			for _, w := range m.Warnings {
				fmt.Printf("warning: %s\n", w)
			}
			for _, o := range m.Objects {
				fmt.Printf("object %q: meshes=%d indices=%d vertices=%d\n", o.Name, o.NumMeshes, o.NumIndices, o.NumVertices)
			}

			if exportPath != "" {
				if err := m.WriteOBJFile(exportPath); err != nil {
					return fmt.Errorf("objzdump: export %s: %w", exportPath, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force32, "force-32", false, "force 32-bit indices regardless of vertex count")
	cmd.Flags().StringVar(&exportPath, "export", "", "re-export the consolidated model as OBJ to this path")
	return cmd
}
