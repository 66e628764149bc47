package checkout

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopfront/internal/constants"
)

// GenerateOrderNo 生成订单号：前缀 + [100000, 999999] 内的随机数
func GenerateOrderNo(prefix string) string {
	if strings.TrimSpace(prefix) == "" {
		prefix = constants.DefaultOrderNoPrefix
	}
	return fmt.Sprintf("%s%d", prefix, constants.OrderNoRandomMin+randIntn(constants.OrderNoRandomSpan))
}

func randIntn(n int64) int64 {
	v, err := rand.Int(rand.Reader, big.NewInt(n))
	if err != nil {
		return 0
	}
	return v.Int64()
}
