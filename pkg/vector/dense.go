// Package vector 提供稠密/稀疏向量的相似度与合并运算。
// 契约：任一操作数模长为 0 时相似度为 0，不返回 error、不产生 NaN。
package vector

import "math"

// Dot 计算等长稠密向量点积；长度不一致时按较短的一侧截断。
func Dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
	}
	return dot
}

// Norm 计算稠密向量的欧氏模长。
func Norm(a []float64) float64 {
	var sum float64
	for _, v := range a {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// Cosine 计算稠密向量余弦相似度。
func Cosine(a, b []float64) float64 {
	na, nb := Norm(a), Norm(b)
	if na == 0 || nb == 0 {
		return 0
	}
	return Dot(a, b) / (na * nb)
}

// Normalize 原地将向量缩放为单位模长；模长为 0 时保持全零不变。
func Normalize(a []float64) {
	n := Norm(a)
	if n == 0 {
		return
	}
	for i := range a {
		a[i] /= n
	}
}
