package core

type Strategy string

const (
	StrategyNone     Strategy = ""
	StrategyGenerate Strategy = "generate"
	StrategyRequest  Strategy = "request"
)

type Capabilities struct {
	CanGenerate bool
	CanServe    bool
}

// ChooseStrategy prefers direct generation over a simulated request.
func ChooseStrategy(c Capabilities) Strategy {
	switch {
	case c.CanGenerate:
		return StrategyGenerate
	case c.CanServe:
		return StrategyRequest
	default:
		return StrategyNone
	}
}

type Retrieval struct {
	Strategy Strategy
	Status   int
	Page     []byte
	Backup   WriteResult
}

type WriteAction int

const (
	ActionWrite WriteAction = iota
	ActionBackupAndWrite
	ActionSkipSameFile
)

func DecideWrite(destExists, sameFile bool) WriteAction {
	if sameFile {
		return ActionSkipSameFile
	}
	if destExists {
		return ActionBackupAndWrite
	}
	return ActionWrite
}

type WriteResult struct {
	Path       string
	BackupPath string
	BackedUp   bool
	Skipped    bool
	Bytes      int64
}

type AssetOrigin string

const (
	OriginSourceDir AssetOrigin = "source-dir"
	OriginOutputDir AssetOrigin = "output-dir"
	OriginMissing   AssetOrigin = "missing"
)

func DecideAssetOrigin(inSourceDir, inOutputDir bool) AssetOrigin {
	switch {
	case inSourceDir:
		return OriginSourceDir
	case inOutputDir:
		return OriginOutputDir
	default:
		return OriginMissing
	}
}

type AssetResult struct {
	Name   string
	Source string
	Origin AssetOrigin
	Write  WriteResult
}

func (r AssetResult) Copied() bool {
	return r.Origin != OriginMissing && !r.Write.Skipped
}

// PublishedFiles lists the page and every asset that ended up in the output
// directory, in the order they were handled.
func PublishedFiles(assets []AssetResult) []string {
	files := []string{PageFile}
	for _, a := range assets {
		if a.Origin == OriginMissing {
			continue
		}
		files = append(files, a.Name)
	}
	return files
}
