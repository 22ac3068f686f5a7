//go:build integration

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/you-humble/partexplorer/internal/model"
	"github.com/you-humble/partexplorer/platform/logger"
	"github.com/you-humble/partexplorer/platform/testcontainers"
	"github.com/you-humble/partexplorer/platform/testcontainers/network"
	tcredis "github.com/you-humble/partexplorer/platform/testcontainers/redis"
)

const defaultRedisImage = "redis:7.4-alpine"

var (
	ctx    context.Context
	net    *network.Network
	redisC *tcredis.Container
)

func TestRedisIntegration(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Response Cache Redis Integration Suite")
}

var _ = BeforeSuite(func() {
	ctx = context.Background()
	logger.SetNopLogger()

	image := os.Getenv(testcontainers.RedisImageNameKey)
	if image == "" {
		image = defaultRedisImage
	}

	By("creating docker network")
	var err error
	net, err = network.NewNetwork(ctx, "partexplorer", "response-cache")
	Expect(err).NotTo(HaveOccurred())

	By("starting redis container")
	redisC, err = tcredis.NewContainer(ctx,
		tcredis.WithNetworkName(net.Name()),
		tcredis.WithContainerName(testcontainers.RedisContainerName+"-"+uuid.NewString()[:8]),
		tcredis.WithImageName(image),
		tcredis.WithLogger(logger.L()),
	)
	Expect(err).NotTo(HaveOccurred())
})

var _ = AfterSuite(func() {
	if redisC != nil {
		_ = redisC.Terminate(ctx)
	}
	_ = net.Remove(ctx)
})

var _ = BeforeEach(func() {
	By("flushing redis")
	Expect(redisC.Client().FlushDB(ctx).Err()).To(Succeed())
})

var _ = Describe("Redis response cache", func() {
	entry := model.CacheEntry{
		Products:     []model.Product{{ID: "p-1", Title: "Pastilha de freio", PartNumber: "HQ-2000", Image: "/img.jpg", Brand: "Cobreq"}},
		Total:        42,
		OriginalData: []model.RawResultItem{{ID: "p-1", Names: []model.PartName{{Name: "HQ-2000", Type: model.NameTypeSKU}}}},
		Facets:       model.FacetSet{Brands: []string{"Cobreq"}},
	}

	It("round-trips a bundle under its content key", func() {
		c := NewRedisCache(redisC.Client(), time.Minute)
		key := model.CatalogRequest{Endpoint: model.EndpointSearch, Path: "/search"}.CacheKey()

		Expect(c.Put(ctx, key, entry)).To(Succeed())

		got, err := c.Get(ctx, key)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Total).To(Equal(entry.Total))
		Expect(got.Products).To(Equal(entry.Products))
		Expect(got.Facets.Brands).To(Equal([]string{"Cobreq"}))

		ttl, err := redisC.Client().TTL(ctx, key).Result()
		Expect(err).NotTo(HaveOccurred())
		Expect(ttl).To(BeNumerically(">", 0))
	})

	It("reports a miss for an unknown key", func() {
		c := NewRedisCache(redisC.Client(), time.Minute)

		_, err := c.Get(ctx, "partexplorer:search:missing")
		Expect(err).To(MatchError(model.ErrCacheMiss))
	})

	It("expires entries after the ttl", func() {
		c := NewRedisCache(redisC.Client(), time.Second)
		Expect(c.Put(ctx, "short", entry)).To(Succeed())

		Eventually(func(g Gomega) {
			_, err := c.Get(ctx, "short")
			g.Expect(err).To(MatchError(model.ErrCacheMiss))
		}).WithTimeout(5 * time.Second).WithPolling(200 * time.Millisecond).Should(Succeed())
	})

	It("feeds a fresh session through the layered cache", func() {
		shared := NewRedisCache(redisC.Client(), time.Minute)
		first := NewLayeredCache(NewMemoryCache(KeepForSession()), shared)
		second := NewLayeredCache(NewMemoryCache(KeepForSession()), shared)

		Expect(first.Put(ctx, "shared-key", entry)).To(Succeed())

		got, err := second.Get(ctx, "shared-key")
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Products).To(Equal(entry.Products))
	})
})
