// internal/poller/registry_test.go
package poller_test

import (
	"bytes"
	"errors"
	"log"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tamzrod/periph-poller/internal/poller"
)

type countingDevice struct {
	polls int
}

func (d *countingDevice) Poll() { d.polls++ }

var _ = Describe("Registry", func() {
	var (
		logBuf *bytes.Buffer
		reg    *poller.Registry
		calls  []string
	)

	record := func(name string) poller.Func {
		return func() { calls = append(calls, name) }
	}

	BeforeEach(func() {
		logBuf = &bytes.Buffer{}
		reg = poller.New(log.New(logBuf, "", 0))
		calls = nil
	})

	Describe("PollAll ordering", func() {
		It("invokes enabled callbacks in registration order", func() {
			reg.RegisterTask("c", record("c"))
			reg.RegisterTask("a", record("a"))
			reg.RegisterTask("b", record("b"))

			rep := reg.PollAll()

			Expect(calls).To(Equal([]string{"c", "a", "b"}))
			Expect(rep.Invoked).To(Equal(3))
			Expect(rep.Skipped).To(Equal(0))
			Expect(rep.Faults).To(BeEmpty())
		})

		It("keeps the same order on every pass", func() {
			reg.RegisterTask("x", record("x"))
			reg.RegisterTask("y", record("y"))

			reg.PollAll()
			reg.PollAll()

			Expect(calls).To(Equal([]string{"x", "y", "x", "y"}))
		})

		It("does nothing on an empty registry", func() {
			rep := reg.PollAll()
			Expect(rep).To(Equal(poller.PassReport{}))
		})
	})

	Describe("enable / disable", func() {
		BeforeEach(func() {
			reg.RegisterTask("a", record("a"))
			reg.RegisterTask("b", record("b"))
			reg.RegisterTask("c", record("c"))
		})

		It("skips a disabled task on the next pass and resumes after re-enable", func() {
			reg.SetTaskEnabled("b", false)
			rep := reg.PollAll()
			Expect(calls).To(Equal([]string{"a", "c"}))
			Expect(rep.Skipped).To(Equal(1))

			calls = nil
			reg.SetTaskEnabled("b", true)
			reg.PollAll()
			Expect(calls).To(Equal([]string{"a", "b", "c"}))
		})

		It("ignores unknown names without touching other tasks", func() {
			reg.SetTaskEnabled("b", false)
			before := reg.Tasks()

			reg.SetTaskEnabled("nope", false)
			reg.SetTaskEnabled("nope", true)

			Expect(reg.Tasks()).To(Equal(before))
		})

		It("applies a disable issued by a callback from the next pass", func() {
			reg.RegisterTask("killer", func() { reg.SetTaskEnabled("a", false) })

			reg.PollAll()
			Expect(calls).To(Equal([]string{"a", "b", "c"}))

			calls = nil
			reg.PollAll()
			Expect(calls).To(Equal([]string{"b", "c"}))
		})

		It("logs the toggle", func() {
			reg.SetTaskEnabled("c", false)
			Expect(logBuf.String()).To(ContainSubstring("poll task disabled (task=c)"))
		})
	})

	Describe("fault containment", func() {
		It("isolates a panicking task from the rest of the pass", func() {
			var counterA, counterC int
			reg.RegisterTask("A", func() { counterA++ })
			reg.RegisterTask("B", func() { panic("device exploded") })
			reg.RegisterTask("C", func() { counterC++ })

			var rep poller.PassReport
			Expect(func() { rep = reg.PollAll() }).NotTo(Panic())

			Expect(counterA).To(Equal(1))
			Expect(counterC).To(Equal(1))
			Expect(rep.Invoked).To(Equal(3))
			Expect(rep.Faults).To(HaveLen(1))
			Expect(rep.Faults[0].Task).To(Equal("B"))
			Expect(logBuf.String()).To(ContainSubstring("poll task fault (task=B): device exploded"))
		})

		It("does not affect later passes", func() {
			var counterC int
			reg.RegisterTask("B", func() { panic("again") })
			reg.RegisterTask("C", func() { counterC++ })

			reg.PollAll()
			rep := reg.PollAll()

			Expect(counterC).To(Equal(2))
			Expect(rep.Faults).To(HaveLen(1))

			infos := reg.Tasks()
			Expect(infos[0].Runs).To(Equal(uint64(2)))
			Expect(infos[0].Faults).To(Equal(uint64(2)))
			Expect(infos[1].Faults).To(BeZero())
			Expect(reg.TotalFaults()).To(Equal(uint64(2)))
		})

		It("exposes error panic values through errors.Is", func() {
			sentinel := errors.New("precondition violated")
			reg.RegisterTask("E", func() { panic(sentinel) })

			rep := reg.PollAll()

			Expect(rep.Faults).To(HaveLen(1))
			Expect(errors.Is(rep.Faults[0], sentinel)).To(BeTrue())
			Expect(rep.Faults[0].Error()).To(ContainSubstring(`"E"`))
		})

		It("contains runtime errors such as nil dereferences", func() {
			var m map[string]int
			reg.RegisterTask("nilmap", func() { m["x"] = 1 })
			reg.RegisterTask("after", record("after"))

			rep := reg.PollAll()

			Expect(rep.Faults).To(HaveLen(1))
			Expect(calls).To(Equal([]string{"after"}))
		})
	})

	Describe("registration edge cases", func() {
		It("rejects an empty name", func() {
			reg.RegisterTask("", record("anon"))

			Expect(reg.Len()).To(Equal(0))
			Expect(logBuf.String()).To(ContainSubstring("empty name"))
		})

		It("skips a task registered without a callback", func() {
			reg.RegisterTask("unbound", nil)
			reg.RegisterPoller("nil-device", nil)
			reg.RegisterTask("bound", record("bound"))

			rep := reg.PollAll()

			Expect(calls).To(Equal([]string{"bound"}))
			Expect(rep.Skipped).To(Equal(2))
			Expect(reg.Tasks()[0].Bound).To(BeFalse())
		})

		It("binds a Poller device", func() {
			dev := &countingDevice{}
			reg.RegisterPoller("dev", dev)

			reg.PollAll()
			reg.PollAll()

			Expect(dev.polls).To(Equal(2))
		})

		It("toggles only the first of two tasks sharing a name", func() {
			reg.RegisterTask("dup", record("first"))
			reg.RegisterTask("dup", record("second"))

			Expect(logBuf.String()).To(ContainSubstring("duplicate task name"))

			reg.SetTaskEnabled("dup", false)
			reg.PollAll()

			Expect(calls).To(Equal([]string{"second"}))
		})

		It("logs every registration", func() {
			reg.RegisterTask("net-phy", record("net-phy"))
			Expect(logBuf.String()).To(ContainSubstring("registered poll task (task=net-phy)"))
		})
	})

	Describe("concurrent mutation", func() {
		It("accepts enable/disable from another goroutine while polling", func() {
			var mu sync.Mutex
			n := 0
			reg.RegisterTask("t", func() {
				mu.Lock()
				n++
				mu.Unlock()
			})

			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < 200; i++ {
					reg.SetTaskEnabled("t", i%2 == 0)
				}
			}()
			for i := 0; i < 200; i++ {
				reg.PollAll()
			}
			wg.Wait()

			reg.SetTaskEnabled("t", true)
			mu.Lock()
			before := n
			mu.Unlock()
			reg.PollAll()
			Expect(n).To(Equal(before + 1))
		})
	})
})
