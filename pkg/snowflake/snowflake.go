package snowflake

import "github.com/bwmarrin/snowflake"

const (
	userNode int64 = 1
	postNode int64 = 2
)

var (
	userGen *snowflake.Node
	postGen *snowflake.Node
)

func init() {
	userGen = mustNode(userNode)
	postGen = mustNode(postNode)
}

func mustNode(id int64) *snowflake.Node {
	node, err := snowflake.NewNode(id)
	if err != nil {
		panic(err)
	}
	return node
}

// GenUserID 用户 ID
func GenUserID() int64 {
	return userGen.Generate().Int64()
}

// GenID 动态 ID，单节点生成保证严格递增
func GenID() int64 {
	return postGen.Generate().Int64()
}
