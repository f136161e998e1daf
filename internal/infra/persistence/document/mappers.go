package document

import (
	"landshare/internal/domain/entity"
	"landshare/internal/infra/persistence/docstore"
)

func encodeRequest(r *entity.InvestmentRequest) docstore.Document {
	w := newWriter()
	w.str("user_id", r.UserID)
	w.str("user_name", r.UserName)
	w.str("user_email", r.UserEmail)
	w.str("user_phone", r.UserPhone)
	w.str("plot_id", r.PlotID)
	w.str("plot_name", r.PlotName)
	w.str("project_id", r.ProjectID)
	w.str("project_name", r.ProjectName)
	w.money("amount_paid", r.AmountPaid)
	w.float("area_purchased", r.AreaPurchased)
	w.money("price_per_sqft", r.PricePerSqft)
	w.str("referral_code", r.ReferralCode)
	w.money("referral_commission", r.ReferralCommission)
	w.boolean("identity_verified", r.IdentityVerified)
	w.boolean("payment_verified", r.PaymentVerified)
	w.optStr("verification_notes", r.VerificationNotes)
	w.optStr("verified_by", r.VerifiedBy)
	w.optTime("verified_at", r.VerifiedAt)
	w.str("status", string(r.Status))
	w.optStr("processed_by", r.ProcessedBy)
	w.optTime("processed_at", r.ProcessedAt)
	w.optStr("approved_by", r.ApprovedBy)
	w.optTime("approved_at", r.ApprovedAt)
	w.optStr("rejected_by", r.RejectedBy)
	w.optTime("rejected_at", r.RejectedAt)
	w.optStr("rejection_reason", r.RejectionReason)
	w.optStr("completed_by", r.CompletedBy)
	w.optTime("completed_at", r.CompletedAt)
	w.optStr("investment_id", r.InvestmentID)
	w.timestamp("created_at", r.CreatedAt)
	w.timestamp("updated_at", r.UpdatedAt)

	return w.doc()
}

func decodeRequest(id string, doc docstore.Document) *entity.InvestmentRequest {
	r := reader(doc)

	return &entity.InvestmentRequest{
		ID:                 id,
		UserID:             r.str("user_id"),
		UserName:           r.str("user_name"),
		UserEmail:          r.str("user_email"),
		UserPhone:          r.str("user_phone"),
		PlotID:             r.str("plot_id"),
		PlotName:           r.str("plot_name"),
		ProjectID:          r.str("project_id"),
		ProjectName:        r.str("project_name"),
		AmountPaid:         r.money("amount_paid"),
		AreaPurchased:      r.float("area_purchased"),
		PricePerSqft:       r.money("price_per_sqft"),
		ReferralCode:       r.str("referral_code"),
		ReferralCommission: r.money("referral_commission"),
		IdentityVerified:   r.boolean("identity_verified"),
		PaymentVerified:    r.boolean("payment_verified"),
		VerificationNotes:  r.str("verification_notes"),
		VerifiedBy:         r.str("verified_by"),
		VerifiedAt:         r.timestamp("verified_at"),
		Status:             entity.RequestStatus(r.str("status")),
		ProcessedBy:        r.str("processed_by"),
		ProcessedAt:        r.timestamp("processed_at"),
		ApprovedBy:         r.str("approved_by"),
		ApprovedAt:         r.timestamp("approved_at"),
		RejectedBy:         r.str("rejected_by"),
		RejectedAt:         r.timestamp("rejected_at"),
		RejectionReason:    r.str("rejection_reason"),
		CompletedBy:        r.str("completed_by"),
		CompletedAt:        r.timestamp("completed_at"),
		InvestmentID:       r.str("investment_id"),
		CreatedAt:          r.timestamp("created_at"),
		UpdatedAt:          r.timestamp("updated_at"),
	}
}

func encodeRequestPatch(p entity.RequestPatch) docstore.Document {
	w := newWriter()
	if p.Status != nil {
		w.str("status", string(*p.Status))
	}
	if p.IdentityVerified != nil {
		w.boolean("identity_verified", *p.IdentityVerified)
	}
	if p.PaymentVerified != nil {
		w.boolean("payment_verified", *p.PaymentVerified)
	}
	if p.VerificationNotes != nil {
		w.str("verification_notes", *p.VerificationNotes)
	}
	if p.VerifiedBy != nil {
		w.str("verified_by", *p.VerifiedBy)
	}
	if p.VerifiedAt != nil {
		w.timestamp("verified_at", *p.VerifiedAt)
	}
	if p.ProcessedBy != nil {
		w.str("processed_by", *p.ProcessedBy)
	}
	if p.ProcessedAt != nil {
		w.timestamp("processed_at", *p.ProcessedAt)
	}
	if p.ApprovedBy != nil {
		w.str("approved_by", *p.ApprovedBy)
	}
	if p.ApprovedAt != nil {
		w.timestamp("approved_at", *p.ApprovedAt)
	}
	if p.RejectedBy != nil {
		w.str("rejected_by", *p.RejectedBy)
	}
	if p.RejectedAt != nil {
		w.timestamp("rejected_at", *p.RejectedAt)
	}
	if p.RejectionReason != nil {
		w.str("rejection_reason", *p.RejectionReason)
	}
	if p.CompletedBy != nil {
		w.str("completed_by", *p.CompletedBy)
	}
	if p.CompletedAt != nil {
		w.timestamp("completed_at", *p.CompletedAt)
	}
	if p.InvestmentID != nil {
		w.str("investment_id", *p.InvestmentID)
	}
	w.optTime("updated_at", p.UpdatedAt)

	return w.doc()
}

func encodeInvestment(inv *entity.Investment) docstore.Document {
	w := newWriter()
	w.str("request_id", inv.RequestID)
	w.str("user_id", inv.UserID)
	w.str("plot_id", inv.PlotID)
	w.str("project_id", inv.ProjectID)
	w.money("amount", inv.Amount)
	w.float("area", inv.Area)
	w.money("price_per_sqft", inv.PricePerSqft)
	w.optStr("referral_code", inv.ReferralCode)
	w.str("status", string(inv.Status))
	w.str("approved_by", inv.ApprovedBy)
	w.optStr("completed_by", inv.CompletedBy)
	w.optTime("completed_at", inv.CompletedAt)
	w.timestamp("created_at", inv.CreatedAt)
	w.timestamp("updated_at", inv.UpdatedAt)

	return w.doc()
}

func decodeInvestment(id string, doc docstore.Document) *entity.Investment {
	r := reader(doc)

	return &entity.Investment{
		ID:           id,
		RequestID:    r.str("request_id"),
		UserID:       r.str("user_id"),
		PlotID:       r.str("plot_id"),
		ProjectID:    r.str("project_id"),
		Amount:       r.money("amount"),
		Area:         r.float("area"),
		PricePerSqft: r.money("price_per_sqft"),
		ReferralCode: r.str("referral_code"),
		Status:       entity.InvestmentStatus(r.str("status")),
		ApprovedBy:   r.str("approved_by"),
		CompletedBy:  r.str("completed_by"),
		CompletedAt:  r.timestamp("completed_at"),
		CreatedAt:    r.timestamp("created_at"),
		UpdatedAt:    r.timestamp("updated_at"),
	}
}

func encodeInvestmentPatch(p entity.InvestmentPatch) docstore.Document {
	w := newWriter()
	if p.Status != nil {
		w.str("status", string(*p.Status))
	}
	if p.CompletedBy != nil {
		w.str("completed_by", *p.CompletedBy)
	}
	if p.CompletedAt != nil {
		w.timestamp("completed_at", *p.CompletedAt)
	}
	w.optTime("updated_at", p.UpdatedAt)

	return w.doc()
}

func encodePlot(p *entity.Plot) docstore.Document {
	w := newWriter()
	w.str("name", p.Name)
	w.str("project_id", p.ProjectID)
	w.float("total_area", p.TotalArea)
	w.float("available_area", p.AvailableArea)
	w.integer("total_owners", p.TotalOwners)
	w.optTime("updated_at", p.UpdatedAt)

	return w.doc()
}

func encodePlotInventory(p *entity.Plot) docstore.Document {
	w := newWriter()
	w.float("available_area", p.AvailableArea)
	w.integer("total_owners", p.TotalOwners)
	w.timestamp("updated_at", p.UpdatedAt)

	return w.doc()
}

func decodePlot(id string, doc docstore.Document) *entity.Plot {
	r := reader(doc)

	return &entity.Plot{
		ID:            id,
		Name:          r.str("name"),
		ProjectID:     r.str("project_id"),
		TotalArea:     r.float("total_area"),
		AvailableArea: r.float("available_area"),
		TotalOwners:   r.integer("total_owners"),
		UpdatedAt:     r.timestamp("updated_at"),
	}
}

func encodeUserProfile(u *entity.UserProfile) docstore.Document {
	w := newWriter()
	w.str("name", u.Name)
	w.str("email", u.Email)
	w.str("phone", u.Phone)
	w.optStr("referral_code", u.ReferralCode)
	w.money("total_investment", u.TotalInvestment)
	w.float("portfolio_area", u.PortfolioArea)
	w.money("wallet_balance", u.WalletBalance)
	w.integer("investment_count", u.InvestmentCount)
	w.str("status", string(u.Status))
	w.optStr("updated_by", u.UpdatedBy)
	w.optTime("updated_at", u.UpdatedAt)

	return w.doc()
}

func encodeUserPortfolio(u *entity.UserProfile) docstore.Document {
	w := newWriter()
	w.money("total_investment", u.TotalInvestment)
	w.float("portfolio_area", u.PortfolioArea)
	w.money("wallet_balance", u.WalletBalance)
	w.integer("investment_count", u.InvestmentCount)
	w.timestamp("updated_at", u.UpdatedAt)

	return w.doc()
}

func encodeUserPatch(p entity.UserPatch) docstore.Document {
	w := newWriter()
	if p.Status != nil {
		w.str("status", string(*p.Status))
	}
	if p.UpdatedBy != nil {
		w.str("updated_by", *p.UpdatedBy)
	}
	w.optTime("updated_at", p.UpdatedAt)

	return w.doc()
}

func decodeUserProfile(id string, doc docstore.Document) *entity.UserProfile {
	r := reader(doc)

	return &entity.UserProfile{
		ID:              id,
		Name:            r.str("name"),
		Email:           r.str("email"),
		Phone:           r.str("phone"),
		ReferralCode:    r.str("referral_code"),
		TotalInvestment: r.money("total_investment"),
		PortfolioArea:   r.float("portfolio_area"),
		WalletBalance:   r.money("wallet_balance"),
		InvestmentCount: r.integer("investment_count"),
		Status:          entity.UserStatus(r.str("status")),
		UpdatedBy:       r.str("updated_by"),
		UpdatedAt:       r.timestamp("updated_at"),
	}
}

func encodeProject(p *entity.Project) docstore.Document {
	w := newWriter()
	w.str("name", p.Name)
	w.money("total_revenue", p.TotalRevenue)
	w.integer("total_investors", p.TotalInvestors)
	w.optTime("updated_at", p.UpdatedAt)

	return w.doc()
}

func encodeProjectTotals(p *entity.Project) docstore.Document {
	w := newWriter()
	w.money("total_revenue", p.TotalRevenue)
	w.integer("total_investors", p.TotalInvestors)
	w.timestamp("updated_at", p.UpdatedAt)

	return w.doc()
}

func decodeProject(id string, doc docstore.Document) *entity.Project {
	r := reader(doc)

	return &entity.Project{
		ID:             id,
		Name:           r.str("name"),
		TotalRevenue:   r.money("total_revenue"),
		TotalInvestors: r.integer("total_investors"),
		UpdatedAt:      r.timestamp("updated_at"),
	}
}

func encodeReferral(ref *entity.Referral) docstore.Document {
	w := newWriter()
	w.str("code", ref.Code)
	w.str("type", string(ref.Type))
	w.str("investor_id", ref.InvestorID)
	w.str("referrer_id", ref.ReferrerID)
	w.money("commission", ref.Commission)
	w.money("investment_amount", ref.InvestmentAmount)
	w.str("investment_id", ref.InvestmentID)
	w.str("request_id", ref.RequestID)
	w.str("status", string(ref.Status))
	if !ref.Resolved() {
		resolveAfter := ref.ResolveAfter
		if resolveAfter.IsZero() {
			resolveAfter = ref.CreatedAt
		}
		w.timestamp("resolve_after", resolveAfter)
	}
	w.timestamp("created_at", ref.CreatedAt)
	w.timestamp("updated_at", ref.UpdatedAt)

	return w.doc()
}

func decodeReferral(id string, doc docstore.Document) *entity.Referral {
	r := reader(doc)

	return &entity.Referral{
		ID:               id,
		Code:             r.str("code"),
		Type:             entity.ReferralType(r.str("type")),
		InvestorID:       r.str("investor_id"),
		ReferrerID:       r.str("referrer_id"),
		Commission:       r.money("commission"),
		InvestmentAmount: r.money("investment_amount"),
		InvestmentID:     r.str("investment_id"),
		RequestID:        r.str("request_id"),
		Status:           entity.ReferralStatus(r.str("status")),
		ResolveAfter:     r.timestamp("resolve_after"),
		CreatedAt:        r.timestamp("created_at"),
		UpdatedAt:        r.timestamp("updated_at"),
	}
}

func encodeQueueItem(item *entity.QueueItem) docstore.Document {
	meta := newWriter()
	meta.money("amount", item.Metadata.Amount)
	meta.str("user_name", item.Metadata.UserName)
	meta.str("user_email", item.Metadata.UserEmail)
	meta.str("user_phone", item.Metadata.UserPhone)
	meta.str("plot_name", item.Metadata.PlotName)
	meta.optTime("request_created_at", item.Metadata.RequestCreatedAt)

	w := newWriter()
	w.str("type", string(item.Type))
	w.str("reference_id", item.ReferenceID)
	w.str("priority", string(item.Priority))
	w.str("status", string(item.Status))
	w.optStr("assigned_to", item.AssignedTo)
	w.nested("metadata", meta)
	w.optStr("error_message", item.ErrorMessage)
	w.timestamp("created_at", item.CreatedAt)
	w.timestamp("updated_at", item.UpdatedAt)
	w.optTime("started_at", item.StartedAt)
	w.optTime("completed_at", item.CompletedAt)

	return w.doc()
}

func decodeQueueItem(id string, doc docstore.Document) *entity.QueueItem {
	r := reader(doc)
	meta := r.nested("metadata")

	return &entity.QueueItem{
		ID:          id,
		Type:        entity.QueueItemType(r.str("type")),
		ReferenceID: r.str("reference_id"),
		Priority:    entity.QueuePriority(r.str("priority")),
		Status:      entity.QueueItemStatus(r.str("status")),
		AssignedTo:  r.str("assigned_to"),
		Metadata: entity.QueueMetadata{
			Amount:           meta.money("amount"),
			UserName:         meta.str("user_name"),
			UserEmail:        meta.str("user_email"),
			UserPhone:        meta.str("user_phone"),
			PlotName:         meta.str("plot_name"),
			RequestCreatedAt: meta.timestamp("request_created_at"),
		},
		ErrorMessage: r.str("error_message"),
		CreatedAt:    r.timestamp("created_at"),
		UpdatedAt:    r.timestamp("updated_at"),
		StartedAt:    r.timestamp("started_at"),
		CompletedAt:  r.timestamp("completed_at"),
	}
}
