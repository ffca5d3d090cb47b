package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("HookableBase", func() {
	It("should invoke all registered hooks", func() {
		hookable := NewHookableBase()

		var positions []*HookPos
		hookable.AcceptHook(hookFunc(func(ctx HookCtx) {
			positions = append(positions, ctx.Pos)
		}))
		hookable.AcceptHook(hookFunc(func(ctx HookCtx) {
			positions = append(positions, ctx.Pos)
		}))

		hookable.InvokeHook(HookCtx{Pos: HookPosBeforeEvent})

		Expect(positions).To(HaveLen(2))
		Expect(positions[0]).To(BeIdenticalTo(HookPosBeforeEvent))
	})
})
