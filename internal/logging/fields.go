package logging

import "log/slog"

// Canonical log keys shared by every package.
const (
	KeyRunID    = "run_id"
	KeyApp      = "app"
	KeyPath     = "path"
	KeyAsset    = "asset"
	KeyOrigin   = "origin"
	KeyStrategy = "strategy"
	KeyStatus   = "status"
	KeyKind     = "kind"
	KeyError    = "error"
)

func RunID(id string) slog.Attr {
	return slog.String(KeyRunID, id)
}

func App(name string) slog.Attr {
	return slog.String(KeyApp, name)
}

func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

func Asset(name string) slog.Attr {
	return slog.String(KeyAsset, name)
}

func Origin(o string) slog.Attr {
	return slog.String(KeyOrigin, o)
}

func Strategy(s string) slog.Attr {
	return slog.String(KeyStrategy, s)
}

func Status(code int) slog.Attr {
	return slog.Int(KeyStatus, code)
}

func Kind(k string) slog.Attr {
	return slog.String(KeyKind, k)
}

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
