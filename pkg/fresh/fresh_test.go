package fresh

import (
	"sync"
	"testing"

	"github.com/onsi/gomega"
)

func TestSequentialNames(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	gen := NewGenerator("v")
	g.Expect(gen.Next()).To(gomega.Equal("v1"))
	g.Expect(gen.Next()).To(gomega.Equal("v2"))
	g.Expect(gen.Issued()).To(gomega.BeEquivalentTo(2))
	g.Expect(gen.Prefix()).To(gomega.Equal("v"))
}

func TestConcurrentNamesAreUnique(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	gen := NewGenerator("n")

	const workers, perWorker = 16, 500
	names := make([][]string, workers)
	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				names[w] = append(names[w], gen.Next())
			}
		}()
	}
	wg.Wait()

	seen := map[string]bool{}
	for _, ns := range names {
		for _, n := range ns {
			g.Expect(seen).ToNot(gomega.HaveKey(n))
			seen[n] = true
		}
	}
	g.Expect(seen).To(gomega.HaveLen(workers * perWorker))
}
