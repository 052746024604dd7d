package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"requisicoes/internal/model"
	"requisicoes/internal/repository"

	"gorm.io/gorm"
)

// DTOs
type OpcoesResponse struct {
	LocaisOrigem      []string          `json:"locais_origem"`
	Destinos          []string          `json:"destinos"`
	Produtos          []string          `json:"produtos"`
	Unidades          []string          `json:"unidades"`
	ProdutoFinalidade map[string]string `json:"produto_finalidade"`
}

type OpcaoRequest struct {
	Tipo       string  `json:"tipo" binding:"required,oneof=local_origem destino produto unidade"`
	Valor      string  `json:"valor" binding:"required"`
	Finalidade *string `json:"finalidade"`
}

type OpcaoService interface {
	GetOpcoes(ctx context.Context) (OpcoesResponse, error)
	AddOpcao(ctx context.Context, req OpcaoRequest) (*model.OpcaoFormulario, error)
	RemoveOpcao(ctx context.Context, tipo, valor string) error
}

type opcaoService struct {
	repo repository.OpcaoRepository
}

func NewOpcaoService(repo repository.OpcaoRepository) OpcaoService {
	return &opcaoService{repo: repo}
}

func (s *opcaoService) GetOpcoes(ctx context.Context) (OpcoesResponse, error) {
	opcoes, err := s.repo.ListActive(ctx)
	if err != nil {
		return OpcoesResponse{}, fmt.Errorf("%w: failed to list options: %w", ErrUpstream, err)
	}

	resp := OpcoesResponse{
		LocaisOrigem:      []string{},
		Destinos:          []string{},
		Produtos:          []string{},
		Unidades:          []string{},
		ProdutoFinalidade: map[string]string{},
	}
	for _, o := range opcoes {
		switch o.Tipo {
		case model.OpcaoLocalOrigem:
			resp.LocaisOrigem = append(resp.LocaisOrigem, o.Valor)
		case model.OpcaoDestino:
			resp.Destinos = append(resp.Destinos, o.Valor)
		case model.OpcaoProduto:
			resp.Produtos = append(resp.Produtos, o.Valor)
			if o.Finalidade != nil && *o.Finalidade != "" {
				resp.ProdutoFinalidade[o.Valor] = *o.Finalidade
			}
		case model.OpcaoUnidade:
			resp.Unidades = append(resp.Unidades, o.Valor)
		}
	}
	return resp, nil
}

// AddOpcao stores a new option or reactivates an existing one with the same value
func (s *opcaoService) AddOpcao(ctx context.Context, req OpcaoRequest) (*model.OpcaoFormulario, error) {
	valor := strings.TrimSpace(req.Valor)
	if valor == "" || !validTipo(req.Tipo) {
		return nil, fmt.Errorf("%w: tipo ou valor inválido", ErrValidation)
	}

	existing, err := s.repo.FindByTipoValor(ctx, req.Tipo, valor)
	switch {
	case err == nil:
		existing.Finalidade = req.Finalidade
		existing.Ativo = true
		if err := s.repo.Activate(ctx, existing); err != nil {
			return nil, fmt.Errorf("%w: failed to activate option: %w", ErrUpstream, err)
		}
		return existing, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("%w: failed to look up option: %w", ErrUpstream, err)
	}

	opcao := &model.OpcaoFormulario{
		Tipo:       req.Tipo,
		Valor:      valor,
		Finalidade: req.Finalidade,
		Ativo:      true,
	}
	if err := s.repo.Create(ctx, opcao); err != nil {
		return nil, fmt.Errorf("%w: failed to create option: %w", ErrUpstream, err)
	}
	return opcao, nil
}

func (s *opcaoService) RemoveOpcao(ctx context.Context, tipo, valor string) error {
	removed, err := s.repo.DeleteByTipoValor(ctx, tipo, strings.TrimSpace(valor))
	if err != nil {
		return fmt.Errorf("%w: failed to remove option: %w", ErrUpstream, err)
	}
	if removed == 0 {
		return fmt.Errorf("%w: %s/%s", ErrOptionNotFound, tipo, valor)
	}
	return nil
}

func validTipo(tipo string) bool {
	switch tipo {
	case model.OpcaoLocalOrigem, model.OpcaoDestino, model.OpcaoProduto, model.OpcaoUnidade:
		return true
	}
	return false
}
