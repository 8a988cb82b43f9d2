package memo_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/okian/sportfit/internal/domain/memo"
	"github.com/okian/sportfit/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func recs(name string) []types.Recommendation {
	return []types.Recommendation{{Rank: 1, EventName: name, Compatibility: 70}}
}

func TestInMemoryCache(t *testing.T) {
	Convey("Given a new in-memory cache", t, func() {
		ctx := context.Background()

		Convey("When created with default options", func() {
			c := memo.NewInMemoryCache()
			So(c, ShouldNotBeNil)
			So(c.Size(), ShouldEqual, 0)
		})

		Convey("When a list is stored", func() {
			c := memo.NewInMemoryCache()
			c.Put(ctx, "k1", recs("Judo Men's Lightweight"))

			Convey("Then it can be read back", func() {
				got, ok := c.Get(ctx, "k1")
				So(ok, ShouldBeTrue)
				So(got, ShouldResemble, recs("Judo Men's Lightweight"))
				So(c.Size(), ShouldEqual, 1)
			})

			Convey("Then the stored copy is independent of the caller's slice", func() {
				got, _ := c.Get(ctx, "k1")
				got[0].Compatibility = 1
				again, _ := c.Get(ctx, "k1")
				So(again[0].Compatibility, ShouldEqual, 70)
			})

			Convey("Then storing the same key replaces without growing", func() {
				c.Put(ctx, "k1", recs("Boxing Women's Flyweight"))
				got, _ := c.Get(ctx, "k1")
				So(got[0].EventName, ShouldEqual, "Boxing Women's Flyweight")
				So(c.Size(), ShouldEqual, 1)
			})
		})

		Convey("When a key is missing", func() {
			c := memo.NewInMemoryCache()
			_, ok := c.Get(ctx, "nope")
			So(ok, ShouldBeFalse)
		})

		Convey("When the cache is at capacity", func() {
			c := memo.NewInMemoryCache(memo.WithMaxSize(3))
			for i := 1; i <= 4; i++ {
				c.Put(ctx, fmt.Sprintf("k%d", i), recs(fmt.Sprintf("e%d", i)))
			}

			Convey("Then the oldest entry is evicted", func() {
				So(c.Size(), ShouldEqual, 3)
				_, ok := c.Get(ctx, "k1")
				So(ok, ShouldBeFalse)
				for _, k := range []string{"k2", "k3", "k4"} {
					_, ok := c.Get(ctx, k)
					So(ok, ShouldBeTrue)
				}
			})
		})

		Convey("When the cache holds a single entry", func() {
			c := memo.NewInMemoryCache(memo.WithMaxSize(1))
			c.Put(ctx, "a", recs("a"))
			c.Put(ctx, "b", recs("b"))
			c.Put(ctx, "c", recs("c"))

			So(c.Size(), ShouldEqual, 1)
			_, ok := c.Get(ctx, "c")
			So(ok, ShouldBeTrue)
		})

		Convey("When the cache is unbounded", func() {
			c := memo.NewInMemoryCache(memo.WithMaxSize(0))
			for i := 0; i < 1000; i++ {
				c.Put(ctx, fmt.Sprintf("k%d", i), nil)
			}
			So(c.Size(), ShouldEqual, 1000)
		})
	})
}

func TestInMemoryCacheConcurrency(t *testing.T) {
	Convey("Given a cache with concurrent writers", t, func() {
		c := memo.NewInMemoryCache(memo.WithMaxSize(500))
		const goroutines = 10
		const perGoroutine = 100

		var wg sync.WaitGroup
		for i := 0; i < goroutines; i++ {
			wg.Add(1)
			go func(id int) {
				defer wg.Done()
				for j := 0; j < perGoroutine; j++ {
					key := fmt.Sprintf("k-%d-%d", id, j)
					c.Put(context.Background(), key, recs(key))
					c.Get(context.Background(), key)
				}
			}(i)
		}
		wg.Wait()

		Convey("Then the bound holds", func() {
			So(c.Size(), ShouldEqual, 500)
		})
	})
}

func TestKey(t *testing.T) {
	Convey("Given request values", t, func() {
		type req struct {
			Age  int    `json:"age"`
			Lang string `json:"lang"`
		}

		a, err := memo.Key("rec:", req{Age: 15, Lang: "en"})
		So(err, ShouldBeNil)
		b, _ := memo.Key("rec:", req{Age: 15, Lang: "en"})
		c, _ := memo.Key("rec:", req{Age: 16, Lang: "en"})

		So(a, ShouldStartWith, "rec:")
		So(a, ShouldEqual, b)
		So(a, ShouldNotEqual, c)

		_, err = memo.Key("", func() {})
		So(err, ShouldNotBeNil)
	})
}
