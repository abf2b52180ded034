package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseSized(t *testing.T, transcript string) *Filesystem {
	t.Helper()
	fs := mustParse(t, transcript)
	fs.AggregateSizes()
	return fs
}

func TestSumDirectoriesSmallerThan(t *testing.T) {
	t.Run("shallow scenario excludes large root", func(t *testing.T) {
		fs := mustParseSized(t, shallowTranscript)

		assert.Equal(t, int64(29700), fs.SumDirectoriesSmallerThan(100000))
	})

	t.Run("nested sample counts nested directories again", func(t *testing.T) {
		fs := mustParseSized(t, sampleTranscript)

		// a (94853) + e (584)
		assert.Equal(t, int64(95437), fs.SumDirectoriesSmallerThan(100000))
	})

	t.Run("bare root qualifies below threshold one", func(t *testing.T) {
		fs := mustParseSized(t, "$ cd /")

		assert.Equal(t, int64(0), fs.SumDirectoriesSmallerThan(1))
	})

	t.Run("threshold equal to a size excludes it", func(t *testing.T) {
		fs := mustParseSized(t, shallowTranscript)

		assert.Equal(t, int64(584), fs.SumDirectoriesSmallerThan(29116))
		assert.Equal(t, int64(29700), fs.SumDirectoriesSmallerThan(29117))
	})

	t.Run("threshold above root includes root", func(t *testing.T) {
		fs := mustParseSized(t, shallowTranscript)

		assert.Equal(t, int64(29116+584+14878214), fs.SumDirectoriesSmallerThan(14878215))
	})

	t.Run("files are never counted directly", func(t *testing.T) {
		fs := mustParseSized(t, "$ ls\n5 small.txt\n7 other.txt")

		// only the root directory (12) qualifies
		assert.Equal(t, int64(12), fs.SumDirectoriesSmallerThan(100))
	})

	t.Run("monotonic in threshold", func(t *testing.T) {
		fs := mustParseSized(t, sampleTranscript)

		prev := int64(-1)
		for _, threshold := range []int64{0, 1, 584, 585, 94853, 94854, 100000, 24933642, 24933643, 48381166, 1 << 40} {
			got := fs.SumDirectoriesSmallerThan(threshold)
			assert.GreaterOrEqual(t, got, prev, "threshold %d", threshold)
			prev = got
		}
	})
}

func TestFindSmallestDirectoryAtLeast(t *testing.T) {
	t.Run("nested sample picks d", func(t *testing.T) {
		fs := mustParseSized(t, sampleTranscript)

		id, ok := fs.FindSmallestDirectoryAtLeast(8381165)

		require.True(t, ok)
		assert.Equal(t, "/d", fs.Path(id))
		assert.Equal(t, int64(24933642), fs.Node(id).Size)
	})

	t.Run("exact size qualifies", func(t *testing.T) {
		fs := mustParseSized(t, sampleTranscript)

		id, ok := fs.FindSmallestDirectoryAtLeast(94853)

		require.True(t, ok)
		assert.Equal(t, "/a", fs.Path(id))
	})

	t.Run("root can be the answer", func(t *testing.T) {
		fs := mustParseSized(t, sampleTranscript)

		id, ok := fs.FindSmallestDirectoryAtLeast(24933643)

		require.True(t, ok)
		assert.Equal(t, fs.Root(), id)
	})

	t.Run("nothing qualifies above root size", func(t *testing.T) {
		fs := mustParseSized(t, sampleTranscript)

		_, ok := fs.FindSmallestDirectoryAtLeast(48381166)

		assert.False(t, ok)
	})

	t.Run("zero picks the smallest directory", func(t *testing.T) {
		fs := mustParseSized(t, shallowTranscript)

		id, ok := fs.FindSmallestDirectoryAtLeast(0)

		require.True(t, ok)
		assert.Equal(t, "/c", fs.Path(id))
	})

	t.Run("tie returns one of the tied directories", func(t *testing.T) {
		fs := mustParseSized(t, `$ ls
dir x
dir y
$ cd x
$ ls
100 f
$ cd ..
$ cd y
$ ls
100 g`)

		id, ok := fs.FindSmallestDirectoryAtLeast(50)

		require.True(t, ok)
		assert.Contains(t, []string{"/x", "/y"}, fs.Path(id))
		assert.Equal(t, int64(100), fs.Node(id).Size)
	})

	t.Run("never returns a directory below minSize", func(t *testing.T) {
		fs := mustParseSized(t, sampleTranscript)

		for _, minSize := range []int64{0, 1, 584, 585, 94854, 8381165, 24933642, 48381165} {
			id, ok := fs.FindSmallestDirectoryAtLeast(minSize)
			require.True(t, ok, "minSize %d", minSize)
			assert.True(t, fs.Node(id).IsDir())
			assert.GreaterOrEqual(t, fs.Node(id).Size, minSize)

			for _, dir := range fs.Directories() {
				if size := fs.Node(dir).Size; size >= minSize {
					assert.LessOrEqual(t, fs.Node(id).Size, size)
				}
			}
		}
	})

	t.Run("queries do not mutate the tree", func(t *testing.T) {
		fs := mustParseSized(t, sampleTranscript)
		before := sizes(fs)

		fs.SumDirectoriesSmallerThan(100000)
		fs.FindSmallestDirectoryAtLeast(8381165)

		assert.Equal(t, before, sizes(fs))
	})
}
