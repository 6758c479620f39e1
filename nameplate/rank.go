package nameplate

import "fmt"

// FriendsChatRank is a player's rank in the viewer's friends chat.
type FriendsChatRank int

const (
	Unranked FriendsChatRank = iota - 1
	Friend
	Recruit
	Corporal
	Sergeant
	Lieutenant
	Captain
	General
	Owner
	JMod FriendsChatRank = 127
)

var friendsRankNames = map[FriendsChatRank]string{
	Unranked:   "unranked",
	Friend:     "friend",
	Recruit:    "recruit",
	Corporal:   "corporal",
	Sergeant:   "sergeant",
	Lieutenant: "lieutenant",
	Captain:    "captain",
	General:    "general",
	Owner:      "owner",
	JMod:       "jmod",
}

func (r FriendsChatRank) String() string {
	if s, ok := friendsRankNames[r]; ok {
		return s
	}
	return fmt.Sprintf("FriendsChatRank(%d)", int(r))
}

// FriendsRanks lists every rank that has a glyph.
func FriendsRanks() []FriendsChatRank {
	return []FriendsChatRank{Friend, Recruit, Corporal, Sergeant, Lieutenant, Captain, General, Owner, JMod}
}

// ClanTitle is a player's title in the viewer's clan.
type ClanTitle struct {
	ID   int
	Name string
}

// RankGlyph identifies the icon drawn beside a name: either a friends-chat
// rank or a clan title.
type RankGlyph struct {
	Clan    bool
	Friends FriendsChatRank
	Title   ClanTitle
}

func (g RankGlyph) String() string {
	if g.Clan {
		return fmt.Sprintf("clan:%d", g.Title.ID)
	}
	return "fc:" + g.Friends.String()
}

// SelectRank picks the glyph to show. A friends-chat rank other than
// Unranked wins when its toggle is on; otherwise the clan title is used
// when its toggle is on.
func SelectRank(friends *FriendsChatRank, clan *ClanTitle, showFriends, showClan bool) (RankGlyph, bool) {
	if friends != nil && showFriends && *friends != Unranked {
		return RankGlyph{Friends: *friends}, true
	}
	if clan != nil && showClan {
		return RankGlyph{Clan: true, Title: *clan}, true
	}
	return RankGlyph{}, false
}
