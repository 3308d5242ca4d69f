package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/mxfmeta/internal/config"
	"github.com/vvka-141/mxfmeta/internal/klv/klvtest"
	"github.com/vvka-141/mxfmeta/internal/metadata"
	"github.com/vvka-141/mxfmeta/internal/metadata/metadatatest"
)

func uid(name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name))
}

// headerPartition encodes a header partition pack, primer pack and sets.
func headerPartition(pack klvtest.Partition, sets ...*metadatatest.Set) []byte {
	primer := metadatatest.Primer()
	var body []byte
	for _, s := range sets {
		body = append(body, s.Packet()...)
	}
	pack.HeaderByteCount = uint64(len(primer) + len(body))
	out := pack.Packet(0x02, 0x04)
	out = append(out, primer...)
	return append(out, body...)
}

// pictureSets describes one material package playing one picture source
// package for 48 edit units.
func pictureSets() []*metadatatest.Set {
	sp := klvtest.UMID(uid("sp"))
	return []*metadatatest.Set{
		metadatatest.New(metadata.PrefaceKey, uid("preface")).Ref("ContentStorage", uid("storage")),
		metadatatest.New(metadata.IdentificationKey, uid("ident")).Text("CompanyName", "Acme"),
		metadatatest.New(metadata.ContentStorageKey, uid("storage")).Refs("Packages", uid("mp"), uid("sp")),
		metadatatest.New(metadata.MaterialPackageKey, uid("mp")).
			UMID("PackageUID", klvtest.UMID(uid("mp"))).
			Text("PackageName", "feature").
			Refs("Tracks", uid("track")),
		metadatatest.New(metadata.TimelineTrackKey, uid("track")).
			U32("TrackID", 1).
			Rational("EditRate", 24, 1).
			Ref("Sequence", uid("seq")),
		metadatatest.New(metadata.SequenceKey, uid("seq")).Refs("StructuralComponents", uid("clip")),
		metadatatest.New(metadata.SourceClipKey, uid("clip")).I64("Duration", 48).UMID("SourcePackageID", sp),
		metadatatest.New(metadata.SourcePackageKey, uid("sp")).
			UMID("PackageUID", sp).
			Ref("Descriptor", uid("desc")),
		metadatatest.New(metadata.RGBAPictureEssenceDescriptorKey, uid("desc")).Rational("SampleRate", 24, 1),
	}
}

func pictureFile() []byte {
	return headerPartition(klvtest.Partition{}, pictureSets()...)
}

// pictureFileWithRIP appends a footer partition and a random index pack.
func pictureFileWithRIP() []byte {
	data := headerPartition(klvtest.Partition{}, pictureSets()...)
	footer := uint64(len(data))
	data = append(data, klvtest.Partition{This: footer, Footer: footer}.Packet(0x04, 0x04)...)
	return append(data, klvtest.RandomIndexPack(
		klvtest.RIPEntry{BodySID: 0, Offset: 0},
		klvtest.RIPEntry{BodySID: 0, Offset: footer},
	)...)
}

func cyclicFile() []byte {
	return headerPartition(klvtest.Partition{},
		metadatatest.New(metadata.PrefaceKey, uid("preface")),
		metadatatest.New(metadata.SequenceKey, uid("a")).Refs("StructuralComponents", uid("b")),
		metadatatest.New(metadata.SequenceKey, uid("b")).Refs("StructuralComponents", uid("a")),
	)
}

// nonFatalFile has a header partition that records a previous partition.
func nonFatalFile() []byte {
	return headerPartition(klvtest.Partition{Previous: 1024}, pictureSets()...)
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// execute runs the command tree with args and returns what it wrote to
// stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	t.Setenv(config.EnvConfigPath, "")
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}
