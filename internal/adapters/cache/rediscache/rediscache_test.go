package rediscache_test

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/sportfit/internal/adapters/cache/rediscache"
	"github.com/okian/sportfit/internal/domain/types"
)

func TestRedisCache(t *testing.T) {
	Convey("Given a cache on a miniredis server", t, func() {
		mr, err := miniredis.Run()
		So(err, ShouldBeNil)
		defer mr.Close()

		ctx := context.Background()
		cache, err := rediscache.Dial(ctx, mr.Addr(), "", 0, rediscache.WithTTL(time.Minute), rediscache.WithPrefix("t:"))
		So(err, ShouldBeNil)
		defer func() { _ = cache.Close() }()

		recs := []types.Recommendation{{Rank: 1, EventName: "Fencing Women's Foil Individual", Compatibility: 64, Strengths: []string{"agility"}}}

		Convey("When a list is stored", func() {
			cache.Put(ctx, "abc", recs)

			Convey("Then it round-trips under the prefixed key with a TTL", func() {
				got, ok := cache.Get(ctx, "abc")
				So(ok, ShouldBeTrue)
				So(got, ShouldResemble, recs)
				So(mr.Exists("t:abc"), ShouldBeTrue)
				So(mr.TTL("t:abc"), ShouldEqual, time.Minute)
				So(cache.Size(), ShouldEqual, 1)
			})

			Convey("Then it expires after the TTL", func() {
				mr.FastForward(2 * time.Minute)
				_, ok := cache.Get(ctx, "abc")
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When other data shares the database", func() {
			So(mr.Set("session:1", "x"), ShouldBeNil)
			So(mr.Set("t", "x"), ShouldBeNil)
			cache.Put(ctx, "abc", recs)
			cache.Put(ctx, "def", recs)

			Convey("Then only prefixed entries are counted", func() {
				So(cache.Size(), ShouldEqual, 2)
			})
		})

		Convey("When a key is missing", func() {
			_, ok := cache.Get(ctx, "missing")
			So(ok, ShouldBeFalse)
		})

		Convey("When the stored value is corrupt", func() {
			So(mr.Set("t:bad", "not-json"), ShouldBeNil)
			_, ok := cache.Get(ctx, "bad")
			So(ok, ShouldBeFalse)
		})

		Convey("When the server goes away", func() {
			mr.Close()
			cache.Put(ctx, "abc", recs)
			_, ok := cache.Get(ctx, "abc")
			So(ok, ShouldBeFalse)
			So(cache.Size(), ShouldEqual, -1)
			So(cache.Ping(ctx), ShouldNotBeNil)
		})
	})

	Convey("Given an unreachable address", t, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_, err := rediscache.Dial(ctx, "127.0.0.1:1", "", 0)
		So(err, ShouldNotBeNil)
	})

	Convey("Given a wrapped client", t, func() {
		mr := miniredis.RunT(t)
		c := rediscache.New(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
		c.Put(context.Background(), "k", nil)
		So(mr.Exists("sportfit:rec:k"), ShouldBeTrue)
	})
}

func TestRedisCacheSizeGlobPrefix(t *testing.T) {
	Convey("Given a prefix containing pattern characters", t, func() {
		mr := miniredis.RunT(t)
		c := rediscache.New(redis.NewClient(&redis.Options{Addr: mr.Addr()}), rediscache.WithPrefix("a*:"))
		c.Put(context.Background(), "k", nil)
		So(mr.Set("ab:k", "x"), ShouldBeNil)

		Convey("Then the prefix matches literally", func() {
			So(c.Size(), ShouldEqual, 1)
		})
	})
}
