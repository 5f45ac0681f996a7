package offersvc

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/base/models"
	dirmodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/directory/models"
	lookupsvc "github.com/sakthiswaran2705/rk-dail-admin/internal/api/lookup/service"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/api/offer/dto"
	offermodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/offer/models"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/common"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/media"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/memstore"
)

type fixture struct {
	svc    *OfferService
	offers *memstore.OfferStore
	media  *memstore.MediaStore
	users  *memstore.UserStore
	shops  *memstore.ShopStore
	owner  dirmodels.User
	shopID primitive.ObjectID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		offers: memstore.NewOfferStore(),
		media:  memstore.NewMediaStore(),
		users:  memstore.NewUserStore(),
		shops:  memstore.NewShopStore(),
	}
	lookup := lookupsvc.NewLookupService(f.users, memstore.NewCityStore(), memstore.NewCategoryStore(), f.shops)
	f.svc = NewOfferService(f.offers, lookup, f.media, nil)

	f.owner = f.users.Add(dirmodels.User{Email: "owner@example.com", PhoneNumber: "9000000002"})
	id, err := f.shops.Insert(context.Background(), &dirmodels.Shop{ShopName: "Sweet Corner", UserID: basemodels.RefFromID(f.owner.ID)})
	require.NoError(t, err)
	f.shopID = id
	return f
}

func (f *fixture) add(t *testing.T, title, filename, contentType string) *offermodels.OfferItem {
	t.Helper()
	item, err := f.svc.AddOffer(context.Background(), dto.OfferCreateInput{
		OwnerIdentifier: f.owner.Email,
		TargetShop:      f.shopID.Hex(),
		Title:           title,
		File:            &media.Upload{Filename: filename, ContentType: contentType, Reader: strings.NewReader(title)},
	})
	require.NoError(t, err)
	return item
}

func TestAddOffer_OneContainerInInsertionOrder(t *testing.T) {
	f := newFixture(t)
	first := f.add(t, "first", "a.png", "image/png")
	second := f.add(t, "second", "clip.MP4", "video/mp4")

	containers := f.offers.Containers()
	require.Len(t, containers, 1)
	c := containers[0]
	assert.Equal(t, basemodels.RefFromID(f.shopID), c.ShopID)
	assert.Equal(t, basemodels.RefFromID(f.owner.ID), c.UserID)
	assert.Equal(t, basemodels.StatusPending, c.Status)
	require.Len(t, c.Offers, 2)
	assert.Equal(t, first.OfferID, c.Offers[0].OfferID)
	assert.Equal(t, second.OfferID, c.Offers[1].OfferID)

	for _, item := range c.Offers {
		assert.Equal(t, basemodels.StatusPending, item.Status)
		assert.True(t, primitive.IsValidObjectID(item.OfferID))
		assert.True(t, f.media.Has(item.MediaPath))
	}
	assert.Equal(t, "media/shop/"+f.shopID.Hex()+"/offers/images/"+first.OfferID+".png", first.MediaPath)
	assert.Equal(t, "media/shop/"+f.shopID.Hex()+"/offers/videos/"+second.OfferID+".mp4", second.MediaPath)
	assert.Equal(t, "video", second.MediaType)
	assert.Equal(t, second.OfferID+".mp4", second.Filename)
}

func TestAddOffer_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	file := func(ct string) *media.Upload {
		return &media.Upload{Filename: "x.bin", ContentType: ct, Reader: strings.NewReader("x")}
	}

	_, err := f.svc.AddOffer(ctx, dto.OfferCreateInput{OwnerIdentifier: "who@example.com", TargetShop: f.shopID.Hex(), File: file("image/png")})
	assert.True(t, common.IsNotFound(err))

	_, err = f.svc.AddOffer(ctx, dto.OfferCreateInput{OwnerIdentifier: f.owner.Email, TargetShop: "shop-1", File: file("image/png")})
	assert.ErrorIs(t, err, common.ErrInvalidID)

	_, err = f.svc.AddOffer(ctx, dto.OfferCreateInput{OwnerIdentifier: f.owner.Email, TargetShop: primitive.NewObjectID().Hex(), File: file("image/png")})
	assert.True(t, common.IsNotFound(err))

	_, err = f.svc.AddOffer(ctx, dto.OfferCreateInput{OwnerIdentifier: f.owner.Email, TargetShop: f.shopID.Hex(), File: file("application/pdf")})
	assert.ErrorIs(t, err, common.ErrUnsupportedMedia)

	assert.Empty(t, f.offers.Containers())
	assert.Empty(t, f.media.Paths())
}

func TestApproveOffer_SiblingsUntouchedContainerRatchets(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.add(t, "a", "a.png", "image/png")
	b := f.add(t, "b", "b.png", "image/png")

	require.NoError(t, f.svc.ApproveOffer(ctx, a.OfferID))

	c := f.offers.Containers()[0]
	assert.Equal(t, basemodels.StatusApproved, c.Status)
	itemA, _ := c.Item(a.OfferID)
	itemB, _ := c.Item(b.OfferID)
	assert.Equal(t, basemodels.StatusApproved, itemA.Status)
	assert.NotNil(t, itemA.ApprovedAt)
	assert.Nil(t, itemA.RejectedAt)
	assert.Equal(t, basemodels.StatusPending, itemB.Status)

	// Từ chối sau khi duyệt: đổi mốc thời gian, container vẫn approved
	require.NoError(t, f.svc.RejectOffer(ctx, a.OfferID))
	c = f.offers.Containers()[0]
	itemA, _ = c.Item(a.OfferID)
	assert.Equal(t, basemodels.StatusRejected, itemA.Status)
	assert.Nil(t, itemA.ApprovedAt)
	assert.NotNil(t, itemA.RejectedAt)
	assert.Equal(t, basemodels.StatusApproved, c.Status)
}

func TestRejectOffer_DoesNotPromoteContainer(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.add(t, "a", "a.png", "image/png")

	require.NoError(t, f.svc.RejectOffer(ctx, a.OfferID))
	assert.Equal(t, basemodels.StatusPending, f.offers.Containers()[0].Status)
}

func TestModerateOffer_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	assert.ErrorIs(t, f.svc.ApproveOffer(ctx, "o-1"), common.ErrInvalidID)
	assert.True(t, common.IsNotFound(f.svc.ApproveOffer(ctx, primitive.NewObjectID().Hex())))
	assert.True(t, common.IsNotFound(f.svc.RejectOffer(ctx, primitive.NewObjectID().Hex())))
	assert.True(t, common.IsNotFound(f.svc.DeleteOffer(ctx, primitive.NewObjectID().Hex())))
}

func TestDeleteOffer_KeepsEmptyContainer(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.add(t, "a", "a.png", "image/png")

	require.NoError(t, f.svc.DeleteOffer(ctx, a.OfferID))
	containers := f.offers.Containers()
	require.Len(t, containers, 1)
	assert.Empty(t, containers[0].Offers)
	assert.False(t, f.media.Has(a.MediaPath))

	assert.True(t, common.IsNotFound(f.svc.DeleteOffer(ctx, a.OfferID)))
}

func TestListPendingOffers(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.add(t, "a", "a.png", "image/png")
	b := f.add(t, "b", "b.png", "image/png")
	require.NoError(t, f.svc.ApproveOffer(ctx, a.OfferID))

	// Container của shop đã bị xóa, user không tồn tại
	orphanShop := primitive.NewObjectID()
	f.offers.Put(offermodels.OfferContainer{
		ShopID: basemodels.RefFromID(orphanShop),
		UserID: basemodels.RefFromID(primitive.NewObjectID()),
		Status: basemodels.StatusPending,
		Offers: []offermodels.OfferItem{{OfferID: "orphan", Status: basemodels.StatusPending, UploadedAt: time.Now()}},
	})

	pending, err := f.svc.ListPendingOffers(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)

	assert.Equal(t, b.OfferID, pending[0].OfferID)
	assert.Equal(t, "Sweet Corner", pending[0].ShopName)
	assert.Equal(t, f.owner.PhoneNumber, pending[0].OwnerPhone)
	assert.Equal(t, f.owner.Email, pending[0].OwnerEmail)

	assert.Equal(t, "orphan", pending[1].OfferID)
	assert.Equal(t, offermodels.UnknownShop, pending[1].ShopName)
	assert.Equal(t, offermodels.UnknownContact, pending[1].OwnerPhone)
	assert.Equal(t, offermodels.UnknownContact, pending[1].OwnerEmail)
}

func TestApprovedOffersForShop(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	items, err := f.svc.ApprovedOffersForShop(ctx, f.shopID)
	require.NoError(t, err)
	assert.Empty(t, items)

	a := f.add(t, "a", "a.png", "image/png")
	f.add(t, "b", "b.png", "image/png")
	require.NoError(t, f.svc.ApproveOffer(ctx, a.OfferID))

	items, err = f.svc.ApprovedOffersForShop(ctx, f.shopID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, a.OfferID, items[0].OfferID)
}

func TestApprovedOffersForShop_MergesDuplicateContainers(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ref := basemodels.RefFromID(f.shopID)
	owner := basemodels.RefFromID(f.owner.ID)
	now := time.Now()

	f.offers.Put(offermodels.OfferContainer{ShopID: ref, UserID: owner, Status: basemodels.StatusPending})
	f.offers.Put(offermodels.OfferContainer{
		ShopID: ref,
		UserID: owner,
		Status: basemodels.StatusApproved,
		Offers: []offermodels.OfferItem{
			{OfferID: "legacy-1", Status: basemodels.StatusApproved, UploadedAt: now},
			{OfferID: "legacy-2", Status: basemodels.StatusRejected, UploadedAt: now},
		},
	})

	// Offer mới rơi vào container cũ nhất
	fresh := f.add(t, "fresh", "fresh.png", "image/png")
	require.NoError(t, f.svc.ApproveOffer(ctx, fresh.OfferID))

	items, err := f.svc.ApprovedOffersForShop(ctx, f.shopID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, fresh.OfferID, items[0].OfferID)
	assert.Equal(t, "legacy-1", items[1].OfferID)

	containers := f.offers.Containers()
	require.Len(t, containers, 2)
	assert.Len(t, containers[0].Offers, 1)
	assert.Len(t, containers[1].Offers, 2)
}

func TestAddOffer_MediaFailureLeavesNoContainer(t *testing.T) {
	f := newFixture(t)
	f.media.FailSave = true
	_, err := f.svc.AddOffer(context.Background(), dto.OfferCreateInput{
		OwnerIdentifier: f.owner.PhoneNumber,
		TargetShop:      f.shopID.Hex(),
		File:            &media.Upload{Filename: "a.png", ContentType: "image/png", Reader: strings.NewReader("a")},
	})
	assert.ErrorIs(t, err, common.NewError(common.ErrCodeMediaStore, "", 0, nil))
	assert.Empty(t, f.offers.Containers())
}
