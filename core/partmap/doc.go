// Package partmap collects the named parts of a multipart/form-data body into
// a key to bytes table and exposes a typed query over it.
//
// A Map is built once per request by draining every part of the body:
//
//	mr, err := r.MultipartReader()
//	if err != nil {
//		return err
//	}
//	m, err := partmap.New(r.Context(), mr, partmap.WithMaxPartSize(1<<20))
//	if err != nil {
//		return err
//	}
//
//	id, err := partmap.Get(m, "id", part.Uint[uint32]())
//	title, err := partmap.Get(m, "title", part.String())
//	note, err := partmap.Get(m, "note", part.Optional(part.String()))
//
// Parts without a form name are dropped. When two parts share a name the last
// one wins. A Map is immutable once built and is not meant to outlive the
// request that produced it.
//
// Draining limits can be loaded from the environment through Config:
//
//	var cfg partmap.Config
//	config.MustLoad(&cfg)
//	m, err := partmap.New(ctx, mr, cfg.Options()...)
package partmap
