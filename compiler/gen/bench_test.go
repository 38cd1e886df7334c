package gen_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/syssam/objcgen/compiler"
	"github.com/syssam/objcgen/compiler/gen"
)

func benchSchema(b *testing.B, objects int) string {
	dir := b.TempDir()
	for i := 0; i < objects; i++ {
		var sb strings.Builder
		fmt.Fprintf(&sb, "object: Object%d\nfields:\n", i)
		for _, f := range []string{"id: string", "owner_id: string", "position: double", "visible: bool", "created_at: time"} {
			name, typ, _ := strings.Cut(f, ": ")
			fmt.Fprintf(&sb, "  - name: %s\n    type: %s\n", name, typ)
		}
		sb.WriteString("fetch:\n  - where: id\n  - where: owner_id\n    plural: true\n  - where: owner_id,visible\n    plural: true\n")
		require.NoError(b, os.WriteFile(filepath.Join(dir, fmt.Sprintf("object%d.yaml", i)), []byte(sb.String()), 0o644))
	}
	return dir
}

func BenchmarkGraph_Gen(b *testing.B) {
	schema := benchSchema(b, 50)
	cfg, err := gen.NewConfig(
		gen.WithTarget(b.TempDir()),
		gen.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	require.NoError(b, err)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		require.NoError(b, compiler.Generate(context.Background(), schema, cfg))
	}
}

func BenchmarkGraph_GenManifest(b *testing.B) {
	schema := benchSchema(b, 50)
	cfg, err := gen.NewConfig(
		gen.WithTarget(b.TempDir()),
		gen.WithFeatures(gen.FeatureManifest),
		gen.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	require.NoError(b, err)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		require.NoError(b, compiler.Generate(context.Background(), schema, cfg))
	}
}

func BenchmarkLoadGraph(b *testing.B) {
	schema := benchSchema(b, 50)
	cfg := gen.DefaultConfig()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := compiler.LoadGraph(schema, cfg)
		require.NoError(b, err)
	}
}
