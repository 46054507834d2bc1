package core

// Reason 是推荐结果的解释标签，闭合枚举：
// similar_to:<product_id> / match_query / neighbors / popular / bias_category。
// 用类型而不是裸字符串承载，输出契约可被类型检查。
type Reason string

const (
	ReasonMatchQuery   Reason = "match_query"
	ReasonNeighbors    Reason = "neighbors"
	ReasonPopular      Reason = "popular"
	ReasonBiasCategory Reason = "bias_category"
)

// ReasonSimilarTo 构造带参数的 similar_to 标签。
func ReasonSimilarTo(productID string) Reason {
	return Reason("similar_to:" + productID)
}
