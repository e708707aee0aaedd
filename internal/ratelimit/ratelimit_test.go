package ratelimit_test

import (
	"context"
	"sync"
	"time"

	"custodian/internal/ratelimit"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"
)

var _ = Describe("WindowLimiter", func() {
	var (
		limiter *ratelimit.WindowLimiter
		now     time.Time
		ctx     context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		limiter = ratelimit.NewWindowLimiter(5, 15*time.Minute, ratelimit.WithClock(func() time.Time {
			return now
		}))
	})

	allow := func(key string) bool {
		ok, err := limiter.Allow(ctx, key)
		Expect(err).NotTo(HaveOccurred())
		return ok
	}

	It("should allow five calls and deny the sixth within the window", func() {
		for i := 0; i < 5; i++ {
			Expect(allow("u1")).To(BeTrue(), "call %d", i+1)
		}
		Expect(allow("u1")).To(BeFalse())
	})

	It("should keep counters per key", func() {
		for i := 0; i < 6; i++ {
			allow("u1")
		}
		Expect(allow("u2")).To(BeTrue())
	})

	It("should open a new window once the period elapsed", func() {
		for i := 0; i < 6; i++ {
			allow("u1")
		}

		now = now.Add(15 * time.Minute)
		Expect(allow("u1")).To(BeTrue())
	})

	It("should keep denying inside the window after the cap is reached", func() {
		for i := 0; i < 6; i++ {
			allow("u1")
		}

		now = now.Add(14 * time.Minute)
		Expect(allow("u1")).To(BeFalse())
	})

	It("should admit exactly the cap under concurrent callers", func() {
		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			granted int
		)
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer GinkgoRecover()
				defer wg.Done()
				ok, err := limiter.Allow(ctx, "u1")
				Expect(err).NotTo(HaveOccurred())
				if ok {
					mu.Lock()
					granted++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		Expect(granted).To(Equal(5))
	})
})

var _ = Describe("RedisLimiter", func() {
	var (
		client  *redis.Client
		limiter *ratelimit.RedisLimiter
		ctx     context.Context
		key     string
	)

	BeforeEach(func() {
		ctx = context.Background()
		client = redis.NewClient(&redis.Options{Addr: "localhost:6379"})
		if err := client.Ping(ctx).Err(); err != nil {
			Skip("redis not available")
		}

		key = "limiter-test-" + time.Now().Format("150405.000000000")
		limiter = ratelimit.NewRedisLimiter(client, "export", 2, time.Second)
	})

	AfterEach(func() {
		if client != nil {
			client.Del(ctx, "export:"+key)
			Expect(client.Close()).To(Succeed())
		}
	})

	It("should share the fixed window through redis", func() {
		for _, want := range []bool{true, true, false} {
			ok, err := limiter.Allow(ctx, key)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(Equal(want))
		}

		Eventually(func() bool {
			ok, _ := limiter.Allow(ctx, key)
			return ok
		}).WithTimeout(3 * time.Second).WithPolling(200 * time.Millisecond).Should(BeTrue())
	})
})
