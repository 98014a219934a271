// Copyright © 2020 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package circuit

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

func bitBasicLayer(bits ...int64) *BasicLayer {
	b := NewBasicLayer()
	for i, v := range bits {
		b.Set(ID(2+i), v)
	}
	return b
}

var _ = Describe("NOT sub-circuit (L3)", func() {
	DescribeTable("1 - x", func(x, want int64) {
		lac := New()
		lac.SetBasicLayer(bitBasicLayer(x))

		l, err := Not([]ID{2}, []ID{100}, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(lac.AppendLayer(l)).To(Succeed())

		out, err := lac.Evaluate()
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal([]int{int(want)}))
	},
		Entry("NOT 0", int64(0), int64(1)),
		Entry("NOT 1", int64(1), int64(0)),
	)
})

var _ = Describe("AND sub-circuit (L2)", func() {
	DescribeTable("x AND y", func(x, y, want int64) {
		lac := New()
		lac.SetBasicLayer(bitBasicLayer(x, y))

		l, err := And([]ID{2}, []ID{3}, []ID{100}, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(lac.AppendLayer(l)).To(Succeed())

		out, err := lac.Evaluate()
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal([]int{int(want)}))
	},
		Entry("0 AND 0", int64(0), int64(0), int64(0)),
		Entry("1 AND 0", int64(1), int64(0), int64(0)),
		Entry("0 AND 1", int64(0), int64(1), int64(0)),
		Entry("1 AND 1", int64(1), int64(1), int64(1)),
	)
})

var _ = Describe("XOR sub-circuit (L1)", func() {
	DescribeTable("x XOR y", func(x, y, want int64) {
		lac := New()
		lac.SetBasicLayer(bitBasicLayer(x, y))

		first, second, err := Xor([]ID{2}, []ID{3}, []ID{100}, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(lac.AppendLayer(first)).To(Succeed())
		Expect(lac.AppendLayer(second)).To(Succeed())

		out, err := lac.Evaluate()
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal([]int{int(want)}))
	},
		Entry("0 XOR 0", int64(0), int64(0), int64(0)),
		Entry("1 XOR 0", int64(1), int64(0), int64(1)),
		Entry("0 XOR 1", int64(0), int64(1), int64(1)),
		Entry("1 XOR 1", int64(1), int64(1), int64(0)),
	)
})

var _ = Describe("XOR sub-circuit on bit-strings (L4)", func() {
	It("is the per-bit XOR of two 4-bit strings", func() {
		lac := New()
		// 1011 XOR 0110 = 1101
		lac.SetBasicLayer(bitBasicLayer(1, 0, 1, 1, 0, 1, 1, 0))
		in0 := []ID{2, 3, 4, 5}
		in1 := []ID{6, 7, 8, 9}
		out := []ID{100, 101, 102, 103}

		first, second, err := Xor(in0, in1, out, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(lac.AppendLayer(first)).To(Succeed())
		Expect(lac.AppendLayer(second)).To(Succeed())

		result, err := lac.Evaluate()
		Expect(err).NotTo(HaveOccurred())
		Expect(result).To(Equal([]int{1, 1, 0, 1}))
	})
})
