// Package datasource is a read-through file cache in front of the upstream
// game data repositories. Each table is described by a Source; Get returns
// the local copy, filling it from upstream on first use.
package datasource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/xtding233/starrail-backend/internal/apperr"
	"github.com/xtding233/starrail-backend/internal/metrics"
)

// Source binds a local cache file to its upstream document. Upstream JSON is
// decoded as TUp and turned into TLocal by Convert. A nil Convert is allowed
// when TUp and TLocal are the same type.
type Source[TUp, TLocal any] struct {
	Name        string
	LocalPath   string
	UpstreamURL string
	Convert     func(TUp) (TLocal, error)
}

// fills are collapsed per local path
var fills singleflight.Group

// FillTimeout bounds one shared upstream fill, retries included.
var FillTimeout = 2 * time.Minute

// Get returns the table described by src.
func Get[TUp, TLocal any](ctx context.Context, f Fetcher, src Source[TUp, TLocal]) (TLocal, error) {
	if v, ok, err := readLocal[TLocal](src.LocalPath); err != nil {
		var zero TLocal
		return zero, err
	} else if ok {
		metrics.CacheLookups.WithLabelValues(src.Name, metrics.ResultHit).Inc()
		return v, nil
	}
	metrics.CacheLookups.WithLabelValues(src.Name, metrics.ResultMiss).Inc()

	// The fill outlives any single caller so a cancelled request cannot fail
	// the others waiting on the same path.
	ch := fills.DoChan(src.LocalPath, func() (any, error) {
		// another fill may have landed while we waited
		if v, ok, err := readLocal[TLocal](src.LocalPath); err != nil || ok {
			return v, err
		}
		fillCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), FillTimeout)
		defer cancel()
		v, err := fill(fillCtx, f, src)
		if err != nil {
			metrics.UpstreamFetches.WithLabelValues(src.Name, metrics.ResultError).Inc()
			return nil, err
		}
		metrics.UpstreamFetches.WithLabelValues(src.Name, metrics.ResultOK).Inc()
		return v, nil
	})

	var zero TLocal
	select {
	case <-ctx.Done():
		return zero, apperr.ServerSide("fill "+src.Name, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(TLocal), nil
	}
}

func fill[TUp, TLocal any](ctx context.Context, f Fetcher, src Source[TUp, TLocal]) (TLocal, error) {
	var zero TLocal
	log := logrus.WithFields(logrus.Fields{"table": src.Name, "url": src.UpstreamURL})

	body, err := f.Fetch(ctx, src.UpstreamURL)
	if err != nil {
		return zero, err
	}
	var up TUp
	if err := json.Unmarshal(body, &up); err != nil {
		return zero, apperr.ServerSide("decode upstream "+src.Name, err)
	}

	var local TLocal
	switch {
	case src.Convert != nil:
		if local, err = src.Convert(up); err != nil {
			return zero, apperr.ServerSide("convert "+src.Name, err)
		}
	default:
		v, ok := any(up).(TLocal)
		if !ok {
			return zero, apperr.ServerSide("convert "+src.Name, errors.New("no converter for differing types"))
		}
		local = v
	}

	if err := ctx.Err(); err != nil {
		return zero, apperr.ServerSide("fill "+src.Name, err)
	}
	if err := writeAtomic(src.LocalPath, local); err != nil {
		return zero, apperr.ServerSide("write "+src.LocalPath, err)
	}
	log.WithField("path", src.LocalPath).Info("cache filled from upstream")
	return local, nil
}

// readLocal reports ok=false when the file does not exist yet.
func readLocal[T any](path string) (T, bool, error) {
	var v T
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return v, false, nil
		}
		return v, false, apperr.ServerSide("read "+path, err)
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return v, false, apperr.ServerSide("parse "+path, err)
	}
	return v, true, nil
}

// writeAtomic writes v next to path and renames it into place, so readers
// only ever see complete files.
func writeAtomic(path string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
