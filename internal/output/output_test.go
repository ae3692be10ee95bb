package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/Zachacious/go-luadoc/internal/assembler"
	"github.com/Zachacious/go-luadoc/internal/doccomment"
	"github.com/Zachacious/go-luadoc/internal/docentry"
	"github.com/Zachacious/go-luadoc/internal/logging"
	"github.com/Zachacious/go-luadoc/internal/model"
)

const signalLua = `--- @class Signal
local Signal = {}

--[=[
	Fires the signal.

	@param ... any -- passed to every listener
	@yields
]=]
function Signal:fire(...) end
`

func signalDocument(t *testing.T) *model.Document {
	t.Helper()
	var entries []docentry.DocEntry
	for _, comment := range doccomment.Find("Signal.lua", signalLua) {
		block, err := comment.Parse()
		require.NoError(t, err)
		entry, err := docentry.FromComment(comment, block, nil)
		require.NoError(t, err)
		entries = append(entries, entry)
	}
	doc, err := assembler.BuildDocument(entries, logging.Discard())
	require.NoError(t, err)
	return doc
}

const wantJSON = `{
  "classes": [
    {
      "name": "Signal",
      "desc": "",
      "functions": [
        {
          "name": "fire",
          "desc": "Fires the signal.",
          "within": "Signal",
          "params": [
            {
              "name": "...",
              "lua_type": "any",
              "desc": "passed to every listener"
            }
          ],
          "returns": [],
          "markers": [
            "yields"
          ],
          "function_type": "method",
          "source": {
            "line": 10,
            "path": "Signal.lua"
          }
        }
      ],
      "types": [],
      "source": {
        "line": 1,
        "path": "Signal.lua"
      }
    }
  ]
}
`

func TestEncode_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, JSON, signalDocument(t)))
	assert.Equal(t, wantJSON, buf.String())
}

func TestEncode_FormatsAgree(t *testing.T) {
	doc := signalDocument(t)

	var fromJSON map[string]any
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, JSON, doc))
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, YAML, doc))

		var got map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assertSameDocument(t, fromJSON, got)
	})

	t.Run("msgpack", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, MessagePack, doc))

		var got map[string]any
		require.NoError(t, msgpack.Unmarshal(buf.Bytes(), &got))
		assertSameDocument(t, fromJSON, got)
	})
}

// assertSameDocument compares documents decoded from different formats by
// round-tripping both through JSON, which evens out numeric types.
func assertSameDocument(t *testing.T, want, got map[string]any) {
	t.Helper()
	wantJSON, err := json.Marshal(want)
	require.NoError(t, err)
	gotJSON, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, string(wantJSON), string(gotJSON))
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"json", "yaml", "msgpack"} {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, Format(name), f)
	}
	_, err := ParseFormat("xml")
	assert.EqualError(t, err, `unknown output format "xml" (want json, yaml or msgpack)`)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "docs.json")
	n, err := WriteFile(path, JSON, signalDocument(t))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, len(data), n)
	assert.Equal(t, wantJSON, string(data))
}
