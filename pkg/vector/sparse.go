package vector

import "math"

// Sparse 是稀疏向量：key→非零权重的映射。
// 用户偏好向量、候选分数表、热门榜都用这一种表示，
// 使协同与加权逻辑可以脱离引擎单测。
type Sparse map[string]float64

// Add 累加一个分量。
func (s Sparse) Add(key string, w float64) {
	s[key] += w
}

// Scale 返回整体缩放后的新向量。
func (s Sparse) Scale(f float64) Sparse {
	out := make(Sparse, len(s))
	for k, v := range s {
		out[k] = v * f
	}
	return out
}

// Clone 返回浅拷贝。
func (s Sparse) Clone() Sparse {
	out := make(Sparse, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Norm 计算欧氏模长。
func (s Sparse) Norm() float64 {
	var sum float64
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// Max 返回最大分量值；空向量返回 0。
func (s Sparse) Max() float64 {
	var max float64
	first := true
	for _, v := range s {
		if first || v > max {
			max = v
			first = false
		}
	}
	return max
}

// DotSparse 计算两个稀疏向量点积。
// 遍历较小的一侧、探查较大的一侧，只累加命中的 key。
func DotSparse(a, b Sparse) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for k, va := range a {
		if vb, ok := b[k]; ok {
			dot += va * vb
		}
	}
	return dot
}

// CosineSparse 计算稀疏余弦相似度；任一侧模长为 0 时返回 0。
func CosineSparse(a, b Sparse) float64 {
	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}
	return DotSparse(a, b) / (na * nb)
}
