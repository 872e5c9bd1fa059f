package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"aac-assist/internal/catalog"
	"aac-assist/internal/config"
	"aac-assist/internal/domain"
	"aac-assist/internal/llm"
	"aac-assist/internal/repository"
	"aac-assist/internal/service"
	"aac-assist/internal/storage"
)

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	backend, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer backend.Close()
	store := backend.Store

	profileSvc := service.NewProfileService(logger, store)
	prefSvc := service.NewPreferenceService(logger, store)
	protoSvc := service.NewPrototypeService(
		logger,
		llm.NewCatalogGenerator(catalog.New()),
		profileSvc,
		repository.NewSessionCache[*service.PrototypeController](cfg.SessionTTL),
		service.Delays{
			ExtendReply:    cfg.ExtendReplyDelay,
			BackgroundInfo: cfg.BackgroundDelay,
			WordToRequest:  cfg.WordRequestDelay,
		},
	)

	for {
		fmt.Println("===== Prototipos AAC =====")
		fmt.Println("[1] Extend Reply")
		fmt.Println("[2] Background Info")
		fmt.Println("[3] Word to Request")
		fmt.Println("[A] Accesibilidad")
		fmt.Println("[Q] Salir")
		fmt.Print("Selecciona: ")
		choice, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		choice = strings.TrimSpace(strings.ToUpper(choice))

		var category domain.Category
		switch choice {
		case "1":
			category = domain.CategoryExtendReply
		case "2":
			category = domain.CategoryBackgroundInfo
		case "3":
			category = domain.CategoryWordToRequest
		case "A":
			if err := accessibilityFlow(ctx, reader, prefSvc); err != nil {
				fmt.Printf("error en preferencias: %v\n", err)
			}
			continue
		case "Q":
			return
		default:
			fmt.Println("Seleccion invalida.")
			continue
		}

		ctrl, err := protoSvc.CreateSession(ctx, string(category))
		if err != nil {
			log.Fatalf("crear sesion: %v", err)
		}
		if err := widgetFlow(ctx, reader, ctrl); err != nil {
			fmt.Printf("error en el widget: %v\n", err)
		}
		_ = protoSvc.CloseSession(ctrl.Snapshot().ID)
	}
}

func widgetFlow(ctx context.Context, reader *bufio.Reader, ctrl *service.PrototypeController) error {
	snap := ctrl.Snapshot()
	fmt.Printf("---- %s (comandos: :var <0.1-1.0>, :q <pregunta>, :perfil <texto>, :guardar, :borrar, :edit <n>, :salir) ----\n", snap.Category)
	if snap.Category == domain.CategoryBackgroundInfo {
		fmt.Printf("Perfil guardado: %q\n", snap.Profile)
		fmt.Println("Preguntas de ejemplo:")
		for i, q := range catalog.SampleQuestions() {
			fmt.Printf("  [%d] %s\n", i+1, q)
		}
	}
	if snap.Category == domain.CategoryWordToRequest {
		fmt.Printf("Palabras de ejemplo: %s\n", strings.Join(catalog.ExampleWords(), ", "))
	}

	for {
		fmt.Print("Tu > ")
		text, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("leer input: %w", err)
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if strings.EqualFold(text, ":salir") || strings.EqualFold(text, "exit") {
			fmt.Println("Saliendo del widget...")
			return nil
		}

		if strings.HasPrefix(text, ":") {
			if err := runCommand(ctx, reader, ctrl, text); err != nil {
				fmt.Printf("error: %v\n", err)
			}
			continue
		}

		input := text
		if snap.Category == domain.CategoryBackgroundInfo {
			input = resolveQuestion(text)
		}
		fmt.Println("Generando...")
		out, err := ctrl.Submit(ctx, input, service.AuxParams{})
		if err != nil {
			fmt.Printf("error generando respuestas: %v\n", err)
			continue
		}
		printCandidates(out)
	}
}

func runCommand(ctx context.Context, reader *bufio.Reader, ctrl *service.PrototypeController, text string) error {
	cmd, arg, _ := strings.Cut(text, " ")
	arg = strings.TrimSpace(arg)
	switch strings.ToLower(cmd) {
	case ":var":
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("variabilidad invalida: %q", arg)
		}
		snap, err := ctrl.Update(nil, service.AuxParams{Variability: &v})
		if err != nil {
			return err
		}
		fmt.Printf("Variabilidad: %.1f\n", snap.Variability)
	case ":q":
		q := resolveQuestion(arg)
		if _, err := ctrl.Update(nil, service.AuxParams{Question: &q}); err != nil {
			return err
		}
		fmt.Printf("Pregunta: %s\n", q)
	case ":perfil":
		if _, err := ctrl.Update(nil, service.AuxParams{Profile: &arg}); err != nil {
			return err
		}
	case ":guardar":
		if err := ctrl.SaveProfile(ctx); err != nil {
			return err
		}
		fmt.Println("Profile saved locally (demo only)")
	case ":borrar":
		if err := ctrl.ClearProfile(ctx); err != nil {
			return err
		}
		fmt.Println("Perfil borrado.")
	case ":edit":
		idx, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("indice invalido: %q", arg)
		}
		return editFlow(reader, ctrl, idx-1)
	default:
		return errors.New("comando desconocido")
	}
	return nil
}

func editFlow(reader *bufio.Reader, ctrl *service.PrototypeController, index int) error {
	snap, err := ctrl.StartEdit(index)
	if err != nil {
		return err
	}
	fmt.Printf("Editando: %s\n", snap.EditText)
	fmt.Print("Nuevo texto (vacio para cancelar): ")
	line, _ := reader.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		_, err := ctrl.CancelEdit()
		return err
	}
	snap, err = ctrl.CommitEdit(line)
	if err != nil {
		return err
	}
	printCandidates(snap.Candidates)
	return nil
}

func accessibilityFlow(ctx context.Context, reader *bufio.Reader, prefSvc *service.PreferenceService) error {
	prefs, err := prefSvc.Load(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Alto contraste: %v | Texto grande: %v\n", prefs.HighContrast, prefs.LargeText)
	prefs.HighContrast = readBoolDefault(reader, "Alto contraste (s/n): ", prefs.HighContrast)
	prefs.LargeText = readBoolDefault(reader, "Texto grande (s/n): ", prefs.LargeText)
	prefs.AccessibilityExpanded = true
	return prefSvc.Save(ctx, prefs)
}

// resolveQuestion acepta el número de una pregunta de ejemplo o texto libre.
func resolveQuestion(text string) string {
	questions := catalog.SampleQuestions()
	if n, err := strconv.Atoi(strings.TrimSpace(text)); err == nil && n >= 1 && n <= len(questions) {
		return questions[n-1]
	}
	return text
}

func printCandidates(out []string) {
	fmt.Println("Sugerencias:")
	for i, c := range out {
		fmt.Printf("  [%d] %s\n", i+1, c)
	}
}

func readBoolDefault(reader *bufio.Reader, prompt string, def bool) bool {
	fmt.Print(prompt)
	line, _ := reader.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "s", "si", "y", "yes":
		return true
	case "n", "no":
		return false
	}
	return def
}
