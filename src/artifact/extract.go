package artifact

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/tidwall/gjson"

	"contract-size/src/logger"
)

const (
	artifactSuffix = ".json"
	// typeDeclFile sits next to the artifacts but is never one.
	typeDeclFile = "artifacts.d.ts"
	// emptyBytecode marks abstract contracts and interfaces.
	emptyBytecode = "0x"
)

// Extractor turns artifact files into Records.
type Extractor struct {
	log        logger.Logger
	permissive bool
}

// NewExtractor creates an Extractor. Skipped files are reported to log at
// debug level only. When permissive is true, bytecode is sized as
// (len-2)/2 without checking that it is valid hex.
func NewExtractor(log logger.Logger, permissive bool) *Extractor {
	if log == nil {
		log = logger.NewSilentLogger()
	}
	return &Extractor{
		log:        log,
		permissive: permissive,
	}
}

// Extract reads the artifact at path. It returns false when the file is not
// an artifact, cannot be parsed, or carries no deployable bytecode.
func (e *Extractor) Extract(path string) (Record, bool) {
	base := filepath.Base(path)
	if !IsCandidate(base) {
		return Record{}, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		e.log.Debug("skipping %s: %v", path, err)
		return Record{}, false
	}
	if !gjson.ValidBytes(data) {
		e.log.Debug("skipping %s: invalid JSON", path)
		return Record{}, false
	}

	bytecode, ok := bytecodeField(data)
	if !ok || bytecode == "" || bytecode == emptyBytecode {
		e.log.Debug("skipping %s: no deployable bytecode", path)
		return Record{}, false
	}

	size, ok := e.measure(bytecode)
	if !ok {
		e.log.Debug("skipping %s: malformed bytecode", path)
		return Record{}, false
	}

	name := strings.TrimSuffix(base, filepath.Ext(base))
	if cn := gjson.GetBytes(data, "contractName"); cn.Type == gjson.String && cn.Str != "" {
		name = cn.Str
	}

	return Record{
		Name:      name,
		SizeBytes: size,
		Path:      path,
	}, true
}

// IsCandidate reports whether a file name may hold a build artifact.
func IsCandidate(name string) bool {
	return strings.HasSuffix(name, artifactSuffix) && name != typeDeclFile
}

// bytecodeField returns the bytecode string of a Hardhat artifact
// ("bytecode": "0x...") or a Foundry artifact ("bytecode": {"object": "0x..."}).
func bytecodeField(data []byte) (string, bool) {
	v := gjson.GetBytes(data, "bytecode")
	if v.IsObject() {
		v = v.Get("object")
	}
	if v.Type != gjson.String {
		return "", false
	}
	return v.Str, true
}

func (e *Extractor) measure(bytecode string) (int, bool) {
	if e.permissive {
		if len(bytecode) <= len(emptyBytecode) {
			return 0, false
		}
		return (len(bytecode) - len(emptyBytecode)) / 2, true
	}

	code, err := hexutil.Decode(bytecode)
	if err != nil || len(code) == 0 {
		return 0, false
	}
	return len(code), true
}
