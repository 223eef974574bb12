package cache

import (
	"context"
	"net/url"
	"strings"

	"github.com/matzehuels/boxflow/pkg/errors"
)

// Open returns the backend described by rawURL:
//
//	""  or "file"                    FileCache in defaultDir
//	file:///path/to/dir              FileCache in the given directory
//	none, off                        NullCache
//	redis://host:6379/0, rediss://   snappy-compressed RedisCache
//	mongodb://host/db, mongodb+srv:// snappy-compressed MongoCache
//
// MongoDB URLs take the database from the path (default "boxflow") and the
// collection from the "collection" query parameter (default "cache").
// Unknown schemes are UNSUPPORTED errors.
func Open(ctx context.Context, rawURL, defaultDir string) (Cache, error) {
	switch rawURL {
	case "", "file":
		return NewFileCache(defaultDir)
	case "none", "off":
		return NewNullCache(), nil
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid cache url %q", rawURL)
	}

	switch u.Scheme {
	case "file":
		dir := u.Path
		if dir == "" {
			dir = u.Opaque
		}
		if dir == "" {
			dir = defaultDir
		}
		return NewFileCache(dir)
	case "redis", "rediss":
		rc, err := NewRedisCache(ctx, rawURL)
		if err != nil {
			return nil, err
		}
		return NewCompressed(rc), nil
	case "mongodb", "mongodb+srv":
		database := strings.Trim(u.Path, "/")
		if database == "" {
			database = DefaultMongoDatabase
		}
		collection := u.Query().Get("collection")
		if collection == "" {
			collection = DefaultMongoCollection
		}
		mc, err := NewMongoCache(ctx, stripQueryParam(u, "collection"), database, collection)
		if err != nil {
			return nil, err
		}
		return NewCompressed(mc), nil
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported cache scheme %q", u.Scheme)
	}
}

// stripQueryParam returns u without the named query parameter. The driver
// rejects options it does not know.
func stripQueryParam(u *url.URL, name string) string {
	c := *u
	q := c.Query()
	q.Del(name)
	c.RawQuery = q.Encode()
	return c.String()
}
