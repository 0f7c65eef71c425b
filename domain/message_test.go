package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_PairKey_Ignores_Argument_Order(t *testing.T) {
	req := require.New(t)
	req.Equal(PairKey("s1", "c1"), PairKey("c1", "s1"))
	req.NotEqual(PairKey("s1", "c1"), PairKey("s1", "c2"))
}

func Test_After_Breaks_Timestamp_Ties_By_Id(t *testing.T) {
	req := require.New(t)
	at := time.Now().UTC()

	first := Message{ID: 1, CreatedAt: at}
	second := Message{ID: 2, CreatedAt: at}
	later := Message{ID: 1, CreatedAt: at.Add(time.Millisecond)}

	req.True(second.After(first))
	req.False(first.After(second))
	req.True(later.After(second))
}

func Test_PartnerOf_Returns_The_Other_Side(t *testing.T) {
	req := require.New(t)
	msg := Message{SenderID: "s1", ReceiverID: "c1"}
	req.Equal("c1", msg.PartnerOf("s1"))
	req.Equal("s1", msg.PartnerOf("c1"))
}
